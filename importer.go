package main

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Baugest615/case-management/pkg/format"

	"github.com/fsnotify/fsnotify"
)

// startImportWatcher watches dir for dropped *.json files holding case records
// and inserts them through the repository, so imports get the same validation
// as the API. Processed files are renamed with a .done suffix; files that fail
// to decode get .bad.
func startImportWatcher(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := w.Add(dir); err != nil {
		w.Close()
		return err
	}
	log.Printf("watching %s for case imports", dir)

	// Debounce bursts: editors and copies fire several events per file.
	scan := format.Debounce(func() { importDir(dir) }, 500*time.Millisecond)
	go func() {
		defer w.Close()
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if ev.Op&(fsnotify.Create|fsnotify.Write) != 0 && isImportFile(ev.Name) {
					scan()
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				log.Printf("import watch error: %v", err)
			}
		}
	}()

	// Pick up anything already sitting in the directory.
	importDir(dir)
	return nil
}

func isImportFile(name string) bool {
	return strings.HasSuffix(strings.ToLower(name), ".json")
}

func importDir(dir string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		log.Printf("import scan failed: %v", err)
		return
	}
	for _, e := range entries {
		if e.IsDir() || !isImportFile(e.Name()) {
			continue
		}
		importFile(filepath.Join(dir, e.Name()))
	}
}

// importFile accepts a single case object or an array of them.
func importFile(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("import read %s: %v", path, err)
		return
	}
	var inputs []CaseInput
	if !format.SafeJSONDecode(data, &inputs) {
		var one CaseInput
		if !format.SafeJSONDecode(data, &one) {
			log.Printf("import %s: not a case record or list, skipping", path)
			markImported(path, ".bad")
			return
		}
		inputs = []CaseInput{one}
	}

	ok, failed := 0, 0
	for _, in := range inputs {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if _, err := repo.Add(ctx, in); err != nil {
			failed++
			log.Printf("import %s: record rejected: %v", path, err)
		} else {
			ok++
		}
		cancel()
	}
	log.Printf("import %s: %d added, %d rejected", path, ok, failed)
	markImported(path, ".done")
}

func markImported(path, suffix string) {
	if err := os.Rename(path, path+suffix); err != nil {
		log.Printf("import: rename %s: %v", path, err)
	}
}

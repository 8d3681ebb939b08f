// Package receipt extracts a suggested expense amount from an uploaded
// receipt image. Amounts are whole New Taiwan dollars; the extraction is a
// suggestion and never authoritative.
package receipt

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

var candidateRE = regexp.MustCompile(`(?i)(?:nt\$|twd|\$|total[:\s]*)?\s*[0-9]{1,3}(?:,[0-9]{3})+(?:\.[0-9]{2})?|(?i:nt\$|twd|\$)\s*[0-9]{2,9}(?:\.[0-9]{2})?|(?i:total)[:\s]+[0-9]{2,9}(?:\.[0-9]{2})?`)

// ExtractAmount runs OCR over preprocessed variants of the image at path and
// returns the best amount candidate with a rough confidence in [0,1] and the
// raw matched substring. A readable image with no detectable amount returns
// (0, 0, "", nil).
func ExtractAmount(path string) (int64, float64, string, error) {
	variants, cleanup, err := preprocessVariants(path)
	if err != nil {
		return 0, 0, "", fmt.Errorf("preprocess: %w", err)
	}
	defer cleanup()

	var matches []string
	read := 0
	for _, v := range variants {
		text, err := ocrText(v)
		if err != nil {
			continue
		}
		read++
		matches = append(matches, findCandidates(text)...)
	}
	if read == 0 {
		return 0, 0, "", fmt.Errorf("ocr produced no text for %s", path)
	}
	amt, raw, ok := BestAmount(matches)
	if !ok {
		return 0, 0, "", nil
	}
	conf := confidence(matches, raw)
	return amt, conf, raw, nil
}

func ocrText(imagePath string) (string, error) {
	client := gosseract.NewClient()
	defer client.Close()
	_ = client.SetLanguage("eng")
	_ = client.SetWhitelist("0123456789NTtwdnTWD$.,:()/- ABCDEFGHIJKLMOPQRSUVXYZabcefghijklmopqrsuvxyz")
	if err := client.SetImage(imagePath); err != nil {
		return "", err
	}
	text, err := client.Text()
	if err != nil {
		return "", err
	}
	return normalizeText(text), nil
}

// findCandidates pulls every plausible amount-looking substring out of text.
func findCandidates(text string) []string {
	raw := candidateRE.FindAllString(text, -1)
	out := make([]string, 0, len(raw))
	for _, m := range raw {
		m = strings.TrimSpace(m)
		if IsPlausibleAmount(m) {
			out = append(out, m)
		}
	}
	return out
}

// confidence is a coarse heuristic: more agreeing matches and currency-marked
// candidates read higher.
func confidence(matches []string, chosen string) float64 {
	if len(matches) == 0 {
		return 0
	}
	chosenAmt, err := ParseAmount(chosen)
	if err != nil {
		return 0
	}
	agree := 0
	for _, m := range matches {
		if amt, err := ParseAmount(m); err == nil && amt == chosenAmt {
			agree++
		}
	}
	conf := float64(agree) / float64(len(matches))
	if hasCurrencyHint(chosen) {
		conf += 0.25
	}
	if conf > 1 {
		conf = 1
	}
	return conf
}

func hasCurrencyHint(s string) bool {
	low := strings.ToLower(s)
	return strings.Contains(low, "nt$") || strings.Contains(low, "twd") || strings.Contains(low, "$")
}

func normalizeText(t string) string {
	t = strings.ReplaceAll(t, "\n", " ")
	t = strings.ReplaceAll(t, "\t", " ")
	return strings.Join(strings.Fields(t), " ")
}

func removeTemp(paths []string) {
	for _, p := range paths {
		_ = os.Remove(p)
	}
}

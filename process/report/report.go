package report

import (
	"database/sql"
	"fmt"
	"log"
	"net/url"
	"os"
	"time"

	"github.com/Baugest615/case-management/models"
	"github.com/Baugest615/case-management/pkg/format"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func mustDBFromEnv() *gorm.DB {
	storeURL := os.Getenv("STORE_URL")
	storeKey := os.Getenv("STORE_KEY")
	if storeURL == "" || storeKey == "" {
		log.Fatal("STORE_URL and STORE_KEY must be set in env")
	}
	u, err := url.Parse(storeURL)
	if err != nil {
		log.Fatalf("invalid STORE_URL: %v", err)
	}
	user := "postgres"
	if u.User != nil && u.User.Username() != "" {
		user = u.User.Username()
	}
	u.User = url.UserPassword(user, storeKey)
	gdb, err := gorm.Open(postgres.Open(u.String()), &gorm.Config{})
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	return gdb
}

// Run prints a month-bounded spending report (month in YYYY-MM): overall
// total, per-category breakdown, and optionally the matching case rows.
func Run(month string, list bool) {
	gdb := mustDBFromEnv()

	t, err := time.Parse("2006-01", month)
	if err != nil {
		log.Fatalf("invalid month format, expected YYYY-MM: %v", err)
	}
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	var total sql.NullInt64
	var cnt int64
	if err := gdb.Raw(
		`SELECT COALESCE(SUM(COALESCE(final_amount, amount, 0)),0) AS total, COUNT(*) AS cnt
		 FROM cases WHERE created_at >= ? AND created_at < ?`,
		start, end).Row().Scan(&total, &cnt); err != nil {
		log.Fatalf("query failed: %v", err)
	}

	fmt.Printf("Case report for month=%s (UTC):\n", month)
	fmt.Printf("  records=%d total=%s\n", cnt, format.Currency(total.Int64, "NT$"))

	rows, err := gdb.Raw(
		`SELECT category, COALESCE(SUM(COALESCE(final_amount, amount, 0)),0) AS total, COUNT(*) AS cnt
		 FROM cases WHERE created_at >= ? AND created_at < ?
		 GROUP BY category ORDER BY total DESC`,
		start, end).Rows()
	if err != nil {
		log.Fatalf("category query failed: %v", err)
	}
	defer rows.Close()
	for rows.Next() {
		var category string
		var catTotal int64
		var catCnt int64
		if err := rows.Scan(&category, &catTotal, &catCnt); err != nil {
			log.Fatalf("scan failed: %v", err)
		}
		if category == "" {
			category = "(uncategorized)"
		}
		fmt.Printf("  %-14s records=%d total=%s\n", category, catCnt, format.Currency(catTotal, "NT$"))
	}

	if list {
		var cases []models.Case
		if err := gdb.Where("created_at >= ? AND created_at < ?", start, end).Order("id").Find(&cases).Error; err != nil {
			log.Fatalf("fetch rows failed: %v", err)
		}
		for _, c := range cases {
			fmt.Printf("%d|%s|%s|%s|%d|%s\n", c.ID, c.Title, c.Category, c.Status,
				c.EffectiveAmount(), c.CreatedAt.Format(time.RFC3339))
		}
	}
}

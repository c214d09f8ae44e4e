// Package dbcmd implements the database inspection commands.
package dbcmd

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/Crazytieguy/type-harder/internal/common"
)

// StatsAction prints paragraph and word totals per book.
func StatsAction(c *cli.Context) error {
	_, database, err := common.Setup(c)
	if err != nil {
		return err
	}
	defer database.Close()

	stats, err := database.StatsByBook()
	if err != nil {
		return err
	}
	if len(stats) == 0 {
		fmt.Println("No paragraphs stored yet. Run: type-harder scrape init && type-harder scrape run")
		return nil
	}

	var articles, paragraphs, words int
	fmt.Printf("%-40s %9s %11s %9s\n", "Book", "Articles", "Paragraphs", "Words")
	for _, s := range stats {
		fmt.Printf("%-40s %9d %11d %9d\n", s.BookTitle, s.Articles, s.Paragraphs, s.Words)
		articles += s.Articles
		paragraphs += s.Paragraphs
		words += s.Words
	}
	fmt.Printf("%-40s %9d %11d %9d\n", "total", articles, paragraphs, words)
	return nil
}

package timeanddate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/gocolly/colly/v2"
	"golang.org/x/net/html"
)

const BaseURL = "https://www.timeanddate.com/holidays/us"

const tableSelector = "table#holidays-table"

// rows with fewer cells are section headers, not holidays
const minCells = 4

const dateLayout = "Jan 2, 2006"

var ErrTableNotFound = errors.New("holiday table not found")

type client struct {
	logger  *slog.Logger
	baseURL string
	timeout time.Duration
}

func New(logger *slog.Logger, baseURL string, timeout time.Duration) Client {
	if baseURL == "" {
		baseURL = BaseURL
	}

	return client{
		logger:  logger,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		timeout: timeout,
	}
}

func (client client) GetHolidays(ctx context.Context, year int) (*Table, error) {
	c := colly.NewCollector(
		colly.StdlibContext(ctx),
		colly.UserAgent("holidays.xdoubleu.com/1.0"),
	)
	if client.timeout > 0 {
		c.SetRequestTimeout(client.timeout)
	}

	table := &Table{
		Year:    year,
		Entries: []Entry{},
		Skipped: []SkippedRow{},
	}

	found := false
	c.OnHTML(tableSelector, func(h *colly.HTMLElement) {
		found = true

		h.ForEach("tbody > tr", func(i int, row *colly.HTMLElement) {
			entry, reason, ok := parseRow(row, year)
			if ok {
				table.Entries = append(table.Entries, entry)
				return
			}

			if reason != "" {
				table.Skipped = append(table.Skipped, SkippedRow{Row: i, Reason: reason})
			}
		})
	})

	url := fmt.Sprintf("%s/%d", client.baseURL, year)
	client.logger.Debug(fmt.Sprintf("fetching holidays from %s", url))

	err := c.Visit(url)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}

	if !found {
		return nil, fmt.Errorf("%w at %s", ErrTableNotFound, url)
	}

	return table, nil
}

// parseRow returns an empty reason for rows that are not holidays at all.
func parseRow(row *colly.HTMLElement, year int) (Entry, string, bool) {
	cells := row.DOM.ChildrenFiltered("td")
	if cells.Length() < minCells {
		return Entry{}, "", false
	}

	name, ok := nodeString(cells.Get(1))
	if !ok || name == "" {
		return Entry{}, "missing holiday name", false
	}

	header := row.DOM.ChildrenFiltered("th")
	if header.Length() == 0 {
		return Entry{}, fmt.Sprintf("%s: missing date cell", name), false
	}

	dayMonth, ok := nodeString(header.Get(0))
	if !ok || dayMonth == "" {
		return Entry{}, fmt.Sprintf("%s: empty date cell", name), false
	}

	raw := fmt.Sprintf("%s, %d", dayMonth, year)
	date, err := time.Parse(dateLayout, raw)
	if err != nil {
		return Entry{}, fmt.Sprintf("%s: invalid date %q", name, raw), false
	}

	return Entry{Name: name, Date: date}, "", true
}

// nodeString returns the text of n when n holds exactly one piece of
// text, looking through single-child wrappers like <a> or <span>.
func nodeString(n *html.Node) (string, bool) {
	for n != nil {
		child := n.FirstChild
		if child == nil || child.NextSibling != nil {
			return "", false
		}

		if child.Type == html.TextNode {
			return strings.TrimSpace(child.Data), true
		}

		if child.Type != html.ElementNode {
			return "", false
		}

		n = child
	}

	return "", false
}

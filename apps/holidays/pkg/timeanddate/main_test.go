package timeanddate_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xdoubleu/essentia/v2/pkg/logging"
	"holidays.xdoubleu.com/apps/holidays/pkg/timeanddate"
)

const page = `<!DOCTYPE html>
<html><body>
<table id="holidays-table">
<thead><tr><th>Date</th><th>Weekday</th><th>Name</th><th>Type</th><th>Details</th></tr></thead>
<tbody>
<tr class="hol-section"><td colspan="4">January</td></tr>
<tr><th>Jan 1</th><td>Monday</td><td><a href="/new-year">New Year's Day</a></td><td>Federal Holiday</td><td></td></tr>
<tr><td>Monday</td><td><a href="/mlk">Martin Luther King Jr. Day</a></td><td>Federal Holiday</td><td></td></tr>
<tr><th>Feb 30</th><td>Friday</td><td>Impossible Day</td><td>Observance</td><td></td></tr>
<tr><th>Jul 4</th><td>Thursday</td><td><a href="/july4">Independence Day</a></td><td>Federal Holiday</td><td>%s</td></tr>
</tbody>
</table>
</body></html>`

func newServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/holidays/us/{year}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")

		switch r.PathValue("year") {
		case "2024":
			fmt.Fprintf(w, page, "Fireworks")
		case "2023":
			fmt.Fprint(w, "<html><body><p>We moved things around</p></body></html>")
		default:
			http.Error(w, "gone", http.StatusInternalServerError)
		}
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return srv
}

func TestGetHolidays(t *testing.T) {
	srv := newServer(t)
	client := timeanddate.New(logging.NewNopLogger(), srv.URL+"/holidays/us/", time.Second)

	table, err := client.GetHolidays(context.Background(), 2024)
	require.Nil(t, err)

	assert.Equal(t, 2024, table.Year)
	assert.Equal(t, []timeanddate.Entry{
		{Name: "New Year's Day", Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{Name: "Independence Day", Date: time.Date(2024, 7, 4, 0, 0, 0, 0, time.UTC)},
	}, table.Entries)

	require.Len(t, table.Skipped, 2)
	assert.Contains(t, table.Skipped[0].Reason, "Martin Luther King Jr. Day: missing date cell")
	assert.Contains(t, table.Skipped[1].Reason, "Impossible Day: invalid date")
}

func TestGetHolidaysMissingTable(t *testing.T) {
	srv := newServer(t)
	client := timeanddate.New(logging.NewNopLogger(), srv.URL+"/holidays/us", time.Second)

	_, err := client.GetHolidays(context.Background(), 2023)
	assert.ErrorIs(t, err, timeanddate.ErrTableNotFound)
}

func TestGetHolidaysServerError(t *testing.T) {
	srv := newServer(t)
	client := timeanddate.New(logging.NewNopLogger(), srv.URL+"/holidays/us", time.Second)

	table, err := client.GetHolidays(context.Background(), 2022)
	assert.Nil(t, table)
	assert.NotNil(t, err)
}

package report

import (
	"sort"
	"strings"
	"time"

	"github.com/airwave/airwave/pkg/period"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type SortBy string

const (
	SortByClient    SortBy = "client"
	SortByStartDate SortBy = "startDate"
	SortByStatus    SortBy = "status"
)

// Options selects and orders the rows of a schedule report. An empty Statuses
// slice selects every period regardless of status.
type Options struct {
	Statuses []period.Status
	SortBy   SortBy
}

// Row is one line of the rendered report. Number is assigned after sorting,
// starting at 1.
type Row struct {
	Number        int
	ClientName    string
	Label         string
	MusicStyle    string
	StartDate     string
	EndDate       string
	PlaylistTypes string
	BroadcastMode string
	Status        string
}

// Client names carry accents, so plain byte ordering would misplace them.
var clientCollator = collate.New(language.BrazilianPortuguese, collate.IgnoreCase)

// BuildReport filters periods by their effective status at now, orders them
// per opts and numbers the surviving rows.
func BuildReport(periods []period.Period, now time.Time, opts Options) []Row {
	selected := make([]period.Period, 0, len(periods))
	for _, p := range periods {
		if statusSelected(period.EffectiveStatus(p, now), opts.Statuses) {
			selected = append(selected, p)
		}
	}

	switch opts.SortBy {
	case SortByClient:
		sort.SliceStable(selected, func(i, j int) bool {
			return clientCollator.CompareString(selected[i].ClientName, selected[j].ClientName) < 0
		})
	case SortByStartDate:
		sort.SliceStable(selected, func(i, j int) bool {
			startI, errI := period.ParseDate(selected[i].StartDate)
			startJ, errJ := period.ParseDate(selected[j].StartDate)
			if errI != nil {
				return false
			}
			if errJ != nil {
				return true
			}
			return startI.After(startJ)
		})
	case SortByStatus:
		sort.SliceStable(selected, func(i, j int) bool {
			return period.EffectiveStatus(selected[i], now) < period.EffectiveStatus(selected[j], now)
		})
	}

	rows := make([]Row, 0, len(selected))
	for i, p := range selected {
		rows = append(rows, Row{
			Number:        i + 1,
			ClientName:    p.ClientName,
			Label:         p.Label,
			MusicStyle:    p.MusicStyle,
			StartDate:     formatReportDate(p.StartDate),
			EndDate:       formatReportDate(p.EndDate),
			PlaylistTypes: strings.Join(p.PlaylistTypes, ", "),
			BroadcastMode: string(p.BroadcastMode),
			Status:        period.EffectiveStatus(p, now).Label(),
		})
	}
	return rows
}

func statusSelected(status period.Status, selection []period.Status) bool {
	if len(selection) == 0 {
		return true
	}
	for _, s := range selection {
		if s == status {
			return true
		}
	}
	return false
}

// formatReportDate renders stored dates day-first; values that no longer
// parse are shown as stored.
func formatReportDate(value string) string {
	date, err := period.ParseDate(value)
	if err != nil {
		return value
	}
	return period.FormatDate(date)
}

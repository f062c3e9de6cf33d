package stats

// Summary is the dashboard snapshot: totals across clients and broadcast
// periods as of a single observation instant.
type Summary struct {
	TotalClients int
	// ScheduledPeriods and ActivePeriods count by effective status at the
	// observation instant.
	ScheduledPeriods int
	ActivePeriods    int
	CompletedPeriods int
	// CreatedThisWeek counts periods whose CreatedAt falls inside the current
	// Sunday to Saturday week; CreatedByWeekday breaks the same count down per
	// weekday, Sunday first.
	CreatedThisWeek  int
	CreatedByWeekday [7]int
	// ClientsWithAirtime is the share of clients holding at least one
	// scheduled or active period, in percent rounded down.
	ClientsWithAirtime int
}

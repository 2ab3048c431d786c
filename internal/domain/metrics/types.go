package metrics

// PeriodAggregates são os agregados brutos de uma janela da ledger de OS.
type PeriodAggregates struct {
	TotalOrders     int     `json:"total"`
	OpenOrders      int     `json:"open"`
	InProgress      int     `json:"in_progress"`
	Completed       int     `json:"completed"`
	Urgent          int     `json:"urgent"`
	WaitingApproval int     `json:"waiting_approval"`
	Revenue         float64 `json:"revenue"`
	AvgHours        float64 `json:"avg_hours"`
}

// TrendSet espelha PeriodAggregates campo a campo, como percentual de
// mudança entre a janela anterior e a corrente.
type TrendSet struct {
	TotalOrders     float64 `json:"total"`
	OpenOrders      float64 `json:"open"`
	InProgress      float64 `json:"in_progress"`
	Completed       float64 `json:"completed"`
	Urgent          float64 `json:"urgent"`
	WaitingApproval float64 `json:"waiting_approval"`
	Revenue         float64 `json:"revenue"`
	AvgHours        float64 `json:"avg_hours"`
}

// Trends derives the per-field trend set of two windows.
func Trends(current, previous *PeriodAggregates) TrendSet {
	return TrendSet{
		TotalOrders:     Trend(float64(current.TotalOrders), float64(previous.TotalOrders)),
		OpenOrders:      Trend(float64(current.OpenOrders), float64(previous.OpenOrders)),
		InProgress:      Trend(float64(current.InProgress), float64(previous.InProgress)),
		Completed:       Trend(float64(current.Completed), float64(previous.Completed)),
		Urgent:          Trend(float64(current.Urgent), float64(previous.Urgent)),
		WaitingApproval: Trend(float64(current.WaitingApproval), float64(previous.WaitingApproval)),
		Revenue:         Trend(current.Revenue, previous.Revenue),
		AvgHours:        Trend(current.AvgHours, previous.AvgHours),
	}
}

type MonthOrders struct {
	Month      string `json:"month"`       // chave ordenável YYYY-MM
	MonthLabel string `json:"month_label"` // rótulo humano Mon/YY
	Total      int    `json:"total"`
	Completed  int    `json:"completed"`
	Open       int    `json:"open"`
	InProgress int    `json:"in_progress"`
}

type MonthRevenue struct {
	Month       string  `json:"month"`
	MonthLabel  string  `json:"month_label"`
	Revenue     float64 `json:"revenue"`
	OrdersCount int     `json:"orders_count"`
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

type PriorityCount struct {
	Priority string `json:"priority"`
	Count    int    `json:"count"`
}

type TechnicianPerformance struct {
	TechnicianName    string  `json:"technician_name"`
	CompletedOrders   int     `json:"completed_orders"`
	AvgTicket         float64 `json:"avg_ticket"`
	TotalRevenue      float64 `json:"total_revenue"`
	AvgCompletionDays float64 `json:"avg_completion_days"`
}

type RevenueSummary struct {
	Today          float64 `json:"today"`
	ThisWeek       float64 `json:"this_week"`
	ThisMonth      float64 `json:"this_month"`
	ThisYear       float64 `json:"this_year"`
	AverageTicket  float64 `json:"average_ticket"`
	CompletedCount int     `json:"completed_count"`
}

type Dashboard struct {
	Current     *PeriodAggregates       `json:"current"`
	Trends      TrendSet                `json:"trends"`
	Technicians []TechnicianPerformance `json:"technicians"`
}

type Charts struct {
	OrdersPerMonth   []MonthOrders   `json:"ordersPerMonth"`
	RevenuePerMonth  []MonthRevenue  `json:"revenuePerMonth"`
	OrdersByStatus   []StatusCount   `json:"ordersByStatus"`
	OrdersByPriority []PriorityCount `json:"ordersByPriority"`
}

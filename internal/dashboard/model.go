package dashboard

// Summary is the aggregate snapshot rendered on the admin landing page.
type Summary struct {
	Customers      int64   `json:"customers"`
	Rooms          int64   `json:"rooms"`
	AvailableRooms int64   `json:"availableRooms"`
	ActiveBookings int64   `json:"activeBookings"`
	TotalIncome    float64 `json:"totalIncome"`
	TotalExpense   float64 `json:"totalExpense"`
	TotalBalance   float64 `json:"totalBalance"`
	MonthlyRevenue float64 `json:"monthlyRevenue"`
}

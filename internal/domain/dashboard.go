package domain

// DashboardData is the fixed-shape aggregation result for one principal.
// Every field is always present: failed metric lookups default to zero and
// a failed profile lookup defaults to nil.
type DashboardData struct {
	Profile            *User `json:"profile"`
	LeadsCount         int   `json:"leadsCount"`
	FollowUpsCount     int   `json:"followUpsCount"`
	WorksheetsCount    int   `json:"worksheetsCount"`
	ProspectsCount     int   `json:"prospectsCount"`
	NotificationsCount int   `json:"notificationsCount"`
	TrainingCount      int   `json:"trainingCount"`
}

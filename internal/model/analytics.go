package model

// WeeklyStat aggregates product/view/chat counts for one week label
// ("YYYY-W##"). At most the 12 most recent weeks are retained.
type WeeklyStat struct {
	Week     string `json:"week"`
	Products int    `json:"products"`
	Views    int    `json:"views"`
	Chats    int    `json:"chats"`
}

// Analytics holds the running totals and the capped weekly breakdown.
// Totals are driven by the same events as the weekly buckets but are never
// rolled back (clearing chats does not decrement TotalChats).
type Analytics struct {
	TotalProducts int          `json:"totalProducts"`
	TotalViews    int          `json:"totalViews"`
	TotalChats    int          `json:"totalChats"`
	WeeklyStats   []WeeklyStat `json:"weeklyStats"`
}

// AnalyticsEvent identifies the three event kinds that drive analytics.
type AnalyticsEvent string

const (
	EventProductCreated AnalyticsEvent = "product_created"
	EventProductViewed  AnalyticsEvent = "product_viewed"
	EventChatSent       AnalyticsEvent = "chat_sent"
)

// MaxWeeklyStats caps the weekly breakdown; the oldest buckets are evicted
// from the front once more accumulate.
const MaxWeeklyStats = 12

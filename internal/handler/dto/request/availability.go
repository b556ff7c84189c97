package request

type CalendarQuery struct {
	From string `form:"from" binding:"required"`
	To   string `form:"to" binding:"required"`
}

type SlotsQuery struct {
	Day string `form:"day" binding:"required"`
}

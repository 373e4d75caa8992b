// ABOUTME: Session metadata entered once per workout in the Session_Info worksheet.
// ABOUTME: Applied to every set logged during that session.
package models

// Session holds the per-workout attributes from the Session_Info
// field/value pairs. A missing workout_date is tolerated here and
// surfaces as an empty string; downstream storage rejects it.
type Session struct {
	WorkoutDate   string
	Location      string
	WorkoutLength string
	Comments      string
}

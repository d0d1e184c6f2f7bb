package entities

// TimelineRoom is one row of the occupancy grid: a room plus every assignment
// of it that intersects the requested window.
type TimelineRoom struct {
	ID          int                 `json:"id"`
	RoomName    string              `json:"room_name"`
	RoomType    *string             `json:"room_type"`
	Capacity    *int                `json:"capacity"`
	Assignments []*AssignmentDetail `json:"assignments"`
}

// Timeline is the derived day-by-room occupancy view. AssignmentsByDate maps
// date (YYYY-MM-DD) -> room id -> assignments covering that day; every date of
// the window is present even when nothing is assigned.
type Timeline struct {
	StartDate         string                                 `json:"start_date"`
	EndDate           string                                 `json:"end_date"`
	Days              int                                    `json:"days"`
	Rooms             []*TimelineRoom                        `json:"rooms"`
	AssignmentsByDate map[string]map[int][]*AssignmentDetail `json:"assignments_by_date"`
}

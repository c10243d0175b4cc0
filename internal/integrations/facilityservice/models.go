package facilityservice

// Room аудитория, жизненный цикл которой принадлежит FacilityService
type Room struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
	Location string `json:"location"`
}

// Instructor преподаватель, жизненный цикл которого принадлежит FacilityService
type Instructor struct {
	ID         int64  `json:"id"`
	FullName   string `json:"fullName"`
	Department string `json:"department"`
}

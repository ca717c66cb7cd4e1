package types

// Student represents a hostel resident stored in the "student" collection.
type Student struct {
	RollNo     string `json:"roll_no" firestore:"roll_no" binding:"required"`
	Name       string `json:"name" firestore:"name" binding:"required"`
	Email      string `json:"email" firestore:"email" binding:"required,email"`
	Phone      string `json:"phone,omitempty" firestore:"phone,omitempty"`
	Department string `json:"department,omitempty" firestore:"department,omitempty"`
	Year       int    `json:"year,omitempty" firestore:"year,omitempty" binding:"omitempty,min=1,max=8"`
}

// Staff represents a hostel staff member stored in the "staff" collection.
type Staff struct {
	StaffID string `json:"staff_id" firestore:"staff_id" binding:"required"`
	Name    string `json:"name" firestore:"name" binding:"required"`
	Role    string `json:"role" firestore:"role" binding:"required"`
	Email   string `json:"email,omitempty" firestore:"email,omitempty" binding:"omitempty,email"`
	Phone   string `json:"phone,omitempty" firestore:"phone,omitempty"`
}

// Room represents a hostel room stored in the "room" collection.
type Room struct {
	Number   string `json:"number" firestore:"number" binding:"required"`
	Capacity int    `json:"capacity" firestore:"capacity" binding:"required,min=1"`
	Floor    int    `json:"floor,omitempty" firestore:"floor,omitempty" binding:"omitempty,min=0"`
	Type     string `json:"type,omitempty" firestore:"type,omitempty" binding:"omitempty,oneof=single double triple"`
}

// Allocation assigns a student to a room for a date range.
// Dates are ISO strings (YYYY-MM-DD), matching what the client sends.
type Allocation struct {
	StudentRollNo string `json:"student_roll_no" firestore:"student_roll_no" binding:"required"`
	RoomNumber    string `json:"room_number" firestore:"room_number" binding:"required"`
	StartDate     string `json:"start_date" firestore:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate       string `json:"end_date,omitempty" firestore:"end_date,omitempty" binding:"omitempty,datetime=2006-01-02"`
	Status        string `json:"status,omitempty" firestore:"status" binding:"omitempty,oneof=active completed cancelled"`
}

// Attendance is a single day's attendance mark for a student.
type Attendance struct {
	AttDate       string `json:"att_date" firestore:"att_date" binding:"required,datetime=2006-01-02"`
	StudentRollNo string `json:"student_roll_no" firestore:"student_roll_no" binding:"required"`
	Status        string `json:"status,omitempty" firestore:"status" binding:"omitempty,oneof=present absent leave"`
	NotedBy       string `json:"noted_by,omitempty" firestore:"noted_by,omitempty"`
}

// Visitor is a visitor log entry. InTime is an ISO time or free-form description.
type Visitor struct {
	Name                  string `json:"name" firestore:"name" binding:"required"`
	VisitingStudentRollNo string `json:"visiting_student_roll_no,omitempty" firestore:"visiting_student_roll_no,omitempty"`
	Purpose               string `json:"purpose,omitempty" firestore:"purpose,omitempty"`
	InTime                string `json:"in_time" firestore:"in_time" binding:"required"`
	OutTime               string `json:"out_time,omitempty" firestore:"out_time,omitempty"`
}

// Complaint is a complaint record. The sentiment, category and severity fields
// are filled in by the analyzer when the complaint is created and are never
// recomputed afterwards.
type Complaint struct {
	RaisedByRollNo  string `json:"raised_by_roll_no,omitempty" firestore:"raised_by_roll_no,omitempty"`
	RaisedByStaffID string `json:"raised_by_staff_id,omitempty" firestore:"raised_by_staff_id,omitempty"`
	Subject         string `json:"subject" firestore:"subject" binding:"required"`
	Description     string `json:"description" firestore:"description" binding:"required"`
	Category        string `json:"category,omitempty" firestore:"category,omitempty"`
	Sentiment       string `json:"sentiment,omitempty" firestore:"sentiment,omitempty"`
	Severity        string `json:"severity,omitempty" firestore:"severity,omitempty" binding:"omitempty,oneof=low medium high"`
}

package dto

type CreateMeetingRequest struct {
	MeetingNo          string   `json:"meetingNo" validate:"required"`
	MeetingDate        string   `json:"meetingDate" validate:"required"`
	Agenda             []string `json:"agenda" validate:"required,min=1"`
	Conclusion         string   `json:"conclusion"`
	Remark             string   `json:"remark"`
	AttendancePhotoURL string   `json:"attendancePhotoUrl"`
	GeoTagPhotoURL     string   `json:"geoTagPhotoUrl"`
}

type ClubMemberRequest struct {
	Role string `json:"role" validate:"required"`
	Name string `json:"name" validate:"required"`
	CM1  bool   `json:"cm1"`
	CM2  bool   `json:"cm2"`
	CM3  bool   `json:"cm3"`
}

// SaveClubRosterRequest replaces the club's office-bearer roster and display
// profile in one call, the way the meeting-log screen submits it.
type SaveClubRosterRequest struct {
	ClubName       string              `json:"clubName" validate:"required"`
	AvailableWeeks int                 `json:"availableWeeks" validate:"min=0"`
	Members        []ClubMemberRequest `json:"members" validate:"required,min=1,dive"`
}

package dto

// CheckInRequest is the check-in payload. UserID lets a caller record
// attendance for another guard; when absent the record is the caller's.
type CheckInRequest struct {
	UserID  *int64  `json:"userId"`
	Remarks *string `json:"remarks"`
}

package domain

// Time format constants
const (
	TimeFormat        = "15:04"           // HH:MM
	DateFormat        = "2006-01-02"      // YYYY-MM-DD
	DisplayDateFormat = "Mon, 02 Jan 2006" // для заголовка экрана
)

// UnassignedGroup имя группы для комнат без корпуса или этажа
const UnassignedGroup = "Unassigned"

// Сообщения, которые показываются пользователю как есть
const (
	MsgNoTimeSelected      = "No time selected"
	MsgInvalidRoomInfo     = "Invalid room information"
	MsgContiguousOnly      = "Please select a contiguous block only"
	MsgFetchFailed         = "Failed to fetch room availability"
	MsgBookingCreated      = "Booking created successfully"
	MsgBookingFailed       = "Failed to create booking"
	MsgSubmitInProgress    = "A booking is already being submitted"
	MsgMissingFormFields   = "Please fill in purpose, point of contact and a valid email"
	MsgFetchBookingsFailed = "Failed to fetch your bookings"
	MsgBookingCancelled    = "Booking cancelled"
	MsgSelectionExpired    = "Selected time has already started, please select again"
)

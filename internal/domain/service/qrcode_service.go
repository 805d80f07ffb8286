package service

// QRCodeService renders a freshly rotated password for hand-off to a phone.
type QRCodeService interface {
	// GeneratePasswordQR returns a PNG image encoding the password.
	GeneratePasswordQR(password string) ([]byte, error)
}

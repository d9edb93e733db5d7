package notifier

import (
	"fmt"

	"hris-backend/config"

	"gopkg.in/gomail.v2"
)

// EmailNotifier mengirim email notifikasi ke karyawan. Jika SMTP_HOST tidak
// diset, notifier jalan dalam mode nonaktif dan Send jadi no-op.
type EmailNotifier struct {
	dialer  *gomail.Dialer
	from    string
	enabled bool
}

func NewEmailNotifier() *EmailNotifier {
	host := config.GetEnv("SMTP_HOST", "")
	if host == "" {
		return &EmailNotifier{}
	}
	return &EmailNotifier{
		dialer: gomail.NewDialer(
			host,
			config.GetEnvAsInt("SMTP_PORT", 587),
			config.GetEnv("SMTP_USER", ""),
			config.GetEnv("SMTP_PASSWORD", ""),
		),
		from:    config.GetEnv("SMTP_FROM", "no-reply@hris.local"),
		enabled: true,
	}
}

// SendIzinDecision memberi tahu karyawan hasil pengajuan izinnya.
func (n *EmailNotifier) SendIzinDecision(to, nama, tanggal, jenis, status string) error {
	if !n.enabled || to == "" {
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("Pengajuan %s tanggal %s: %s", jenis, tanggal, status))
	m.SetBody("text/plain", fmt.Sprintf(
		"Halo %s,\n\nPengajuan %s Anda untuk tanggal %s telah %s.\n\nSalam,\nHR",
		nama, jenis, tanggal, status))

	return n.dialer.DialAndSend(m)
}

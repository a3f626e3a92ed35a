package utils

import (
	"bytes"
	"html/template"
	"log"
	"strconv"

	"cinema_booking/config"

	"gopkg.in/gomail.v2"
)

// PaymentConfirmationData dữ liệu cho email xác nhận thanh toán
type PaymentConfirmationData struct {
	CustomerName string
	BookingCode  string
	TotalPaid    float64
	EarnedPoints int
	Seats        string
}

var paymentMailTmpl = template.Must(template.New("payment").Parse(`
<h3>Xin chào {{.CustomerName}},</h3>
<p>Thanh toán cho đơn đặt vé <b>#{{.BookingCode}}</b> đã hoàn tất.</p>
<ul>
  <li>Ghế: {{.Seats}}</li>
  <li>Tổng tiền: {{.TotalPaid}}đ</li>
  <li>Điểm tích luỹ: +{{.EarnedPoints}}</li>
</ul>
<p>Hẹn gặp bạn tại rạp!</p>
`))

// SendPaymentConfirmationEmail gửi email xác nhận thanh toán (async)
func SendPaymentConfirmationEmail(to string, data PaymentConfirmationData) {
	go func() { // Async để không delay response
		var body bytes.Buffer
		if err := paymentMailTmpl.Execute(&body, data); err != nil {
			log.Printf("Lỗi render template email: %v", err)
			return
		}

		host := config.Config("SMTP_HOST")
		port, _ := strconv.Atoi(config.ConfigDefault("SMTP_PORT", "587"))
		username := config.Config("SMTP_USERNAME")
		password := config.Config("SMTP_PASSWORD")
		from := config.ConfigDefault("SMTP_FROM", username)

		if host == "" {
			log.Println("Bỏ qua gửi email: chưa cấu hình SMTP_HOST")
			return
		}

		m := gomail.NewMessage()
		m.SetHeader("From", from)
		m.SetHeader("To", to)
		m.SetHeader("Subject", "Xác nhận thanh toán #"+data.BookingCode)
		m.SetBody("text/html", body.String())

		d := gomail.NewDialer(host, port, username, password)
		if err := d.DialAndSend(m); err != nil {
			log.Printf("Lỗi gửi email: %v", err)
		}
	}()
}

package ticket

import (
	"regexp"
	"strings"
)

// Voucher is the structured content of a "LINK + 驗證碼" voucher text.
type Voucher struct {
	ServiceName   string `json:"service_name,omitempty"`
	ReservationID string `json:"reservation_id,omitempty"`
	URL           string `json:"url,omitempty"`
	Code          string `json:"code,omitempty"`
	RawText       string `json:"raw_text"`
}

var (
	serviceNameRe   = regexp.MustCompile(`【(.*?)】`)
	reservationIDRe = regexp.MustCompile(`預約(\w+)`)
	voucherURLRe    = regexp.MustCompile(`(https?://\S+)`)
	voucherCodeRe   = regexp.MustCompile(`驗證碼(\d{4,8})`)
)

// ParseVoucher extracts the service name, reservation id, URL and
// verification code from a pasted voucher message. Absent pieces stay
// empty; the raw text is always preserved.
func ParseVoucher(text string) Voucher {
	v := Voucher{RawText: text}
	if m := serviceNameRe.FindStringSubmatch(text); m != nil {
		v.ServiceName = strings.TrimSpace(m[1])
	}
	if m := reservationIDRe.FindStringSubmatch(text); m != nil {
		v.ReservationID = m[1]
	}
	if m := voucherURLRe.FindStringSubmatch(text); m != nil {
		v.URL = strings.TrimSuffix(m[1], "。")
	}
	if m := voucherCodeRe.FindStringSubmatch(text); m != nil {
		v.Code = m[1]
	}
	return v
}

package report

import (
	"strings"

	"github.com/yasunstudio/toko-oleh-oleh-sub000/internal/entity"
)

// Traffic source labels.
const (
	SourceDirect   = "Direct"
	SourceOrganic  = "Organic Search"
	SourceSocial   = "Social Media"
	SourceReferral = "Referral"
)

// Device labels. Visitors with an unrecognized device value are grouped
// under DeviceOther so device shares always cover every visitor.
const (
	DeviceLabelDesktop = "Desktop"
	DeviceLabelMobile  = "Mobile"
	DeviceLabelTablet  = "Tablet"
	DeviceOther        = "Lainnya"
)

// Stock status labels, thresholds fixed at 10 and 50.
const (
	StockStatusOut    = "Habis Stok"
	StockStatusLow    = "Stok Rendah"
	StockStatusNormal = "Normal"
	StockStatusHigh   = "Stok Tinggi"

	lowStockThreshold  = 10
	highStockThreshold = 50
)

// Customer segments by all-time order count.
const (
	SegmentInactive = "Tidak Aktif"
	SegmentNew      = "Baru"
	SegmentRegular  = "Reguler"
	SegmentVIP      = "VIP"
)

var (
	searchEngineHosts = []string{"google", "bing", "yahoo", "duckduckgo", "yandex"}
	socialMediaHosts  = []string{"facebook", "instagram", "twitter", "tiktok"}
)

// ReferrerSource classifies a raw referrer URL with ordered substring
// rules, first match wins: empty is Direct, then search engines, then
// social networks, anything else is a Referral. Matching is
// case-insensitive.
func ReferrerSource(referrer string) string {
	ref := strings.ToLower(strings.TrimSpace(referrer))
	switch {
	case ref == "":
		return SourceDirect
	case containsAny(ref, searchEngineHosts):
		return SourceOrganic
	case containsAny(ref, socialMediaHosts):
		return SourceSocial
	default:
		return SourceReferral
	}
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// DeviceLabel maps the stored device enum to its report label.
func DeviceLabel(device entity.DeviceEnum) string {
	switch device {
	case entity.DeviceDesktop:
		return DeviceLabelDesktop
	case entity.DeviceMobile:
		return DeviceLabelMobile
	case entity.DeviceTablet:
		return DeviceLabelTablet
	default:
		return DeviceOther
	}
}

// StockStatus labels a stock level. Low stock is strictly below 10; a
// stock of exactly 10 is Normal.
func StockStatus(stock int) string {
	switch {
	case stock == 0:
		return StockStatusOut
	case stock < lowStockThreshold:
		return StockStatusLow
	case stock >= highStockThreshold:
		return StockStatusHigh
	default:
		return StockStatusNormal
	}
}

// CustomerSegment labels a customer by all-time order count:
// 0 inactive, 1 new, 2-5 regular, above 5 VIP.
func CustomerSegment(orderCount int) string {
	switch {
	case orderCount == 0:
		return SegmentInactive
	case orderCount == 1:
		return SegmentNew
	case orderCount <= 5:
		return SegmentRegular
	default:
		return SegmentVIP
	}
}

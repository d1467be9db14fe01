package domain

import (
	"fmt"
	"net/url"
)

// Platform is a social network an order can be shared to.
type Platform string

const (
	PlatformFacebook  Platform = "facebook"
	PlatformTwitter   Platform = "twitter"
	PlatformLinkedIn  Platform = "linkedin"
	PlatformWhatsApp  Platform = "whatsapp"
	PlatformInstagram Platform = "instagram"
)

// BuildShareURL returns a social share link for an order. Unknown platforms
// intentionally reuse the facebook template. An empty string means the link
// could not be generated and must not be treated as a valid URL.
func BuildShareURL(baseURL string, platform Platform, order Order) string {
	base, err := url.Parse(baseURL)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return ""
	}
	pageURL := base.JoinPath("orders", order.ID).String()
	text := fmt.Sprintf("I just bought %s. Best purchase ever.", order.ProductName)

	switch platform {
	case PlatformTwitter:
		return "https://twitter.com/intent/tweet?url=" + url.QueryEscape(pageURL) + "&text=" + url.QueryEscape(text)
	case PlatformLinkedIn:
		return "https://www.linkedin.com/sharing/share-offsite/?url=" + url.QueryEscape(pageURL)
	case PlatformWhatsApp:
		return "https://wa.me/?text=" + url.QueryEscape(text+" "+pageURL)
	case PlatformInstagram:
		// Instagram has no web share intent; deep-link to the app with the
		// order page attached.
		return "https://www.instagram.com/?url=" + url.QueryEscape(pageURL)
	case PlatformFacebook:
		return "https://www.facebook.com/sharer/sharer.php?u=" + url.QueryEscape(pageURL)
	default:
		return "https://www.facebook.com/sharer/sharer.php?u=" + url.QueryEscape(pageURL)
	}
}

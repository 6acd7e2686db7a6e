package share

import (
	"fmt"
	"net/url"

	"mosaic-mind/internal/domain"
)

// ShareText arma el mensaje corto para compartir el perfil.
func ShareText(profile domain.MosaicProfile) string {
	return fmt.Sprintf("Just discovered my unique personality mosaic with MosaicMind! 🧩\n\nPattern Complexity: %d/100\n\nCheck out your personality pattern:", profile.Visualization.Complexity)
}

// TwitterShareURL construye la URL de intent de Twitter/X.
func TwitterShareURL(profile domain.MosaicProfile, pageURL string) string {
	q := url.Values{}
	q.Set("text", ShareText(profile))
	q.Set("url", pageURL)
	q.Set("hashtags", "MosaicMind,Personality,Psychology,SelfDiscovery")
	return "https://twitter.com/intent/tweet?" + q.Encode()
}

// LinkedInShareURL construye la URL de share-offsite de LinkedIn.
func LinkedInShareURL(profile domain.MosaicProfile, pageURL string) string {
	q := url.Values{}
	q.Set("url", pageURL)
	q.Set("title", "My MosaicMind Personality Assessment")
	q.Set("summary", fmt.Sprintf("I just completed the MosaicMind personality assessment and discovered my unique personality pattern with %d/100 complexity.", profile.Visualization.Complexity))
	q.Set("source", "MosaicMind")
	return "https://www.linkedin.com/sharing/share-offsite/?" + q.Encode()
}

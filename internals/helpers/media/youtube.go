package media

import "regexp"

var youtubeIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/|youtube\.com/embed/|youtube\.com/shorts/)([a-zA-Z0-9_-]{11})`),
	regexp.MustCompile(`youtube\.com/watch\?.*v=([a-zA-Z0-9_-]{11})`),
}

// ExtractYouTubeVideoID pulls the 11-char video id out of the usual YouTube
// URL forms (watch, youtu.be, embed, shorts, mobile). Empty if not YouTube.
func ExtractYouTubeVideoID(url string) string {
	for _, p := range youtubeIDPatterns {
		if m := p.FindStringSubmatch(url); m != nil {
			return m[1]
		}
	}
	return ""
}

// YouTubeThumbnailURL derives the thumbnail for a YouTube link, nil for
// anything else. maxresdefault is served for every video; YouTube falls back
// internally when the high-res frame is missing.
func YouTubeThumbnailURL(videoURL string) *string {
	id := ExtractYouTubeVideoID(videoURL)
	if id == "" {
		return nil
	}
	u := "https://img.youtube.com/vi/" + id + "/maxresdefault.jpg"
	return &u
}

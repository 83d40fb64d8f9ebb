package handler

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

const (
	videoAspectLandscape = "16:9"
)

var videoTimePattern = regexp.MustCompile(`(?i)(\d+)(h|m|s)`) // YouTube 的 t=1h2m3s 形式

// workVideo 描述作品视频在页面上的呈现方式。
// EmbedURL 非空时以 iframe 嵌入外部播放器，否则 FileURL 指向媒体目录下的文件。
type workVideo struct {
	EmbedURL string
	FileURL  string
	Aspect   string
}

// resolveWorkVideo 将作品保存的视频引用解析为可渲染的地址。
// YouTube 与 B 站链接转换为嵌入播放器地址，其余值视为媒体文件路径。
func (a *API) resolveWorkVideo(raw string) workVideo {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return workVideo{}
	}

	if strings.HasPrefix(trimmed, "http://") || strings.HasPrefix(trimmed, "https://") {
		if parsed, err := url.Parse(trimmed); err == nil && parsed != nil {
			if embedURL, ok := youtubeEmbedURL(parsed); ok {
				return workVideo{EmbedURL: embedURL, Aspect: videoAspectLandscape}
			}
			if embedURL, ok := bilibiliEmbedURL(parsed); ok {
				return workVideo{EmbedURL: embedURL, Aspect: videoAspectLandscape}
			}
		}
		// 其他外链直接作为视频源使用
		return workVideo{FileURL: trimmed}
	}

	return workVideo{FileURL: a.mediaFileURL(trimmed)}
}

func youtubeEmbedURL(u *url.URL) (string, bool) {
	host := strings.ToLower(u.Hostname())
	var videoID string

	switch {
	case host == "youtu.be":
		videoID = firstPathSegment(u.Path)
	case isHostOrSubdomain(host, "youtube.com"):
		path := strings.Trim(u.Path, "/")
		switch {
		case path == "watch":
			videoID = u.Query().Get("v")
		case strings.HasPrefix(path, "shorts/"):
			videoID = firstPathSegment(strings.TrimPrefix(path, "shorts/"))
		case strings.HasPrefix(path, "embed/"):
			videoID = firstPathSegment(strings.TrimPrefix(path, "embed/"))
		}
	default:
		return "", false
	}

	if videoID == "" {
		return "", false
	}

	values := url.Values{}
	values.Set("rel", "0")
	values.Set("playsinline", "1")
	if start := youtubeStartSeconds(u); start > 0 {
		values.Set("start", strconv.Itoa(start))
	}

	return fmt.Sprintf("https://www.youtube.com/embed/%s?%s", videoID, values.Encode()), true
}

func youtubeStartSeconds(u *url.URL) int {
	value := u.Query().Get("start")
	if value == "" {
		value = u.Query().Get("t")
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return 0
	}

	if seconds, err := strconv.Atoi(value); err == nil {
		if seconds > 0 {
			return seconds
		}
		return 0
	}

	total := 0
	for _, match := range videoTimePattern.FindAllStringSubmatch(value, -1) {
		amount, err := strconv.Atoi(match[1])
		if err != nil || amount <= 0 {
			continue
		}
		switch strings.ToLower(match[2]) {
		case "h":
			total += amount * 3600
		case "m":
			total += amount * 60
		case "s":
			total += amount
		}
	}
	return total
}

func bilibiliEmbedURL(u *url.URL) (string, bool) {
	host := strings.ToLower(u.Hostname())
	if !isHostOrSubdomain(host, "bilibili.com") {
		return "", false
	}

	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(segments) < 2 || segments[0] != "video" {
		return "", false
	}

	rawID := segments[1]
	values := url.Values{}
	lowerID := strings.ToLower(rawID)
	switch {
	case strings.HasPrefix(lowerID, "bv"):
		values.Set("bvid", rawID)
	case strings.HasPrefix(lowerID, "av"):
		values.Set("aid", strings.TrimPrefix(lowerID, "av"))
	default:
		return "", false
	}
	values.Set("high_quality", "1")
	values.Set("danmaku", "0")
	values.Set("autoplay", "0")

	return "https://player.bilibili.com/player.html?" + values.Encode(), true
}

func firstPathSegment(path string) string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return ""
	}
	if idx := strings.Index(trimmed, "/"); idx >= 0 {
		return trimmed[:idx]
	}
	return trimmed
}

func isHostOrSubdomain(host, domain string) bool {
	if host == "" || domain == "" {
		return false
	}
	return host == domain || strings.HasSuffix(host, "."+domain)
}

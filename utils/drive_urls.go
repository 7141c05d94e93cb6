package utils

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
)

// thumbnailSizeRegex matches the "=s220" size suffix Drive puts on thumbnail links
var thumbnailSizeRegex = regexp.MustCompile(`=s\d+$`)

// CertificateLink builds the public Drive viewer link for a file
func CertificateLink(fileID string) string {
	return fmt.Sprintf("https://drive.google.com/file/d/%s/view?usp=sharing", url.PathEscape(fileID))
}

// DownloadURL builds the direct download URL for a Drive file
func DownloadURL(fileID string) string {
	return "https://docs.google.com/uc?export=download&id=" + url.QueryEscape(fileID)
}

// ThumbnailURL rewrites the size suffix of a Drive thumbnail link so Drive renders it at maxDim.
// Links without a size suffix are returned unchanged
func ThumbnailURL(thumbnailLink string, maxDim int) string {
	if maxDim <= 0 {
		return thumbnailLink
	}
	return thumbnailSizeRegex.ReplaceAllString(thumbnailLink, "=s"+strconv.Itoa(maxDim))
}

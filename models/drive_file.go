package models

// DriveFile represents a file entry returned by a Google Drive folder listing
type DriveFile struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	MimeType      string   `json:"mimeType"`
	Parents       []string `json:"parents,omitempty"`
	ThumbnailLink string   `json:"thumbnailLink,omitempty"`
}

// InFolder reports whether folderID is one of the file's parents
func (f DriveFile) InFolder(folderID string) bool {
	for _, parent := range f.Parents {
		if parent == folderID {
			return true
		}
	}
	return false
}

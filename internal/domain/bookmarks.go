package domain

// Bookmark is a single shortcut entry from the start page's bookmarks file.
type Bookmark struct {
	Title string `json:"title"`
	URL   string `json:"url"`
	Icon  string `json:"icon"`
}

// MirrorResult summarizes an icon mirroring run.
type MirrorResult struct {
	Total      int
	Downloaded int
	Skipped    int
	Failed     int
	BackupPath string
	// Failures holds the per-bookmark download errors, joined. It is nil
	// when every download succeeded; it never makes the run itself fail.
	Failures error
}

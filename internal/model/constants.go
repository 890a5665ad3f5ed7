package model

const (
	// DefaultStartURL is the document opened when neither the CLI nor the
	// config file names one.
	DefaultStartURL = "https://xuperlist-1.netlify.app/XUPERLISTS-1.w3u"

	// DefaultCacheName is the slot filename used when a document URL has no
	// path basename to derive one from.
	DefaultCacheName = "default.w3u"
)

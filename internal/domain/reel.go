package domain

type Reel struct {
	ID string
	// MediaHandle is an opaque reference into the media store. It is acquired once
	// when the reel is uploaded and released once when the reel is deleted.
	MediaHandle      string
	UploaderID       int64
	UploaderUsername string
}

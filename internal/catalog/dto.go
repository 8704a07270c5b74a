package catalog

type CreateMediaRequest struct {
	Type      string `json:"type" binding:"required,mediatype"`
	Name      string `json:"name" binding:"required,max=100"`
	Creator   string `json:"creator" binding:"max=100"` // artist, director or author
	Available *bool  `json:"available"`                 // defaults to true
}

type AvailableMediaQuery struct {
	Type string `form:"type" binding:"required,mediatype"`
}

type MediaResponse struct {
	ID        uint32 `json:"id"`
	Type      string `json:"type"`
	Name      string `json:"name"`
	Available bool   `json:"available"`
	Artist    string `json:"artist,omitempty"`
	Director  string `json:"director,omitempty"`
	Author    string `json:"author,omitempty"`
}

type MediaListResponse struct {
	CDs        []MediaResponse `json:"cds"`
	DVDs       []MediaResponse `json:"dvds"`
	Books      []MediaResponse `json:"books"`
	BoardGames []MediaResponse `json:"boardGames"`
}

package models

type StudioService struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Price       string `json:"price"`
}

type ServicesMenu struct {
	Services []StudioService `json:"services"`
}

package model

type Theater struct {
	DTO
	Name     string `gorm:"not null" json:"name"`
	City     string `gorm:"size:100" json:"city"`
	Address  string `json:"address"`
	Hotline  string `gorm:"size:20" json:"hotline"`
	IsActive bool   `gorm:"default:true" json:"isActive"`

	Rooms []Room `gorm:"foreignKey:TheaterId;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"rooms,omitempty"`
}

type Room struct {
	DTO
	TheaterId uint   `gorm:"not null;index" json:"theaterId"`
	Name      string `gorm:"not null" json:"name"`
	Type      string `gorm:"size:20;default:'2D'" json:"type"` // 2D, 3D, IMAX, 4DX
	Capacity  int    `json:"capacity"`
	IsActive  bool   `gorm:"default:true" json:"isActive"`
}

// RoomRef là dữ liệu phòng tối thiểu mà Theater service cung cấp cho
// Schedule service khi xếp lịch chiếu.
type RoomRef struct {
	Id   uint   `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

type CreateTheaterInput struct {
	Name    string `json:"name" validate:"required"`
	City    string `json:"city" validate:"required"`
	Address string `json:"address" validate:"required"`
	Hotline string `json:"hotline"`
}

type EditTheaterInput struct {
	Name     *string `json:"name"`
	City     *string `json:"city"`
	Address  *string `json:"address"`
	Hotline  *string `json:"hotline"`
	IsActive *bool   `json:"isActive"`
}

type CreateRoomInput struct {
	Name     string `json:"name" validate:"required"`
	Type     string `json:"type" validate:"required,oneof=2D 3D IMAX 4DX"`
	Capacity int    `json:"capacity" validate:"omitempty,gt=0"`
}

type FilterTheaterInput struct {
	Pagination
	City      string `query:"city"`
	SearchKey string `query:"searchKey"`
}

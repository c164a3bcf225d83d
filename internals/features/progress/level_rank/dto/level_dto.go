package dto

import "capacitajun_backend/internals/features/progress/level_rank/model"

type LevelRequest struct {
	Level     int    `json:"level" validate:"required,min=1"`
	Name      string `json:"name" validate:"required,max=100"`
	MinPoints int    `json:"min_points" validate:"min=0"`
	MaxPoints *int   `json:"max_points" validate:"omitempty,gtefield=MinPoints"`
}

func (r LevelRequest) ToModel() model.LevelRequirement {
	return model.LevelRequirement{
		LevelReqLevel:     r.Level,
		LevelReqName:      r.Name,
		LevelReqMinPoints: r.MinPoints,
		LevelReqMaxPoints: r.MaxPoints,
	}
}

type LevelResponse struct {
	ID        uint   `json:"id"`
	Level     int    `json:"level"`
	Name      string `json:"name"`
	MinPoints int    `json:"min_points"`
	MaxPoints *int   `json:"max_points,omitempty"`
}

func ToLevelResponse(m model.LevelRequirement) LevelResponse {
	return LevelResponse{
		ID:        m.LevelReqID,
		Level:     m.LevelReqLevel,
		Name:      m.LevelReqName,
		MinPoints: m.LevelReqMinPoints,
		MaxPoints: m.LevelReqMaxPoints,
	}
}

func ToLevelResponseList(ms []model.LevelRequirement) []LevelResponse {
	out := make([]LevelResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToLevelResponse(m))
	}
	return out
}

package v1

import (
	"github.com/shenikar/cpr_dispatch/internal/flow"
	"github.com/shenikar/cpr_dispatch/internal/models"
)

// ModelToRequestResponse преобразует запрос реестра в DTO, статус вычисляется здесь
func ModelToRequestResponse(model *models.EmergencyRequest) *RequestResponse {
	etas := model.AcceptedETAs
	if etas == nil {
		etas = []string{}
	}
	return &RequestResponse{
		ID:                model.ID,
		Location:          model.Location,
		Distance:          model.Distance,
		Coordinates:       model.Coordinates,
		Type:              model.Type,
		Description:       model.Description,
		Status:            model.Status(),
		AcceptedCount:     model.AcceptedCount(),
		AcceptedETAs:      etas,
		HasMedicalProfile: model.HasMedicalProfile,
		CanSMS:            model.CanSMS,
		Timestamp:         model.CreatedAt,
	}
}

// ModelsToRequestResponses преобразует слайс моделей в слайс DTO
func ModelsToRequestResponses(models []*models.EmergencyRequest) []*RequestResponse {
	responses := make([]*RequestResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToRequestResponse(model)
	}
	return responses
}

func ModelToStatsResponse(stats *models.LedgerStats) StatsResponse {
	return StatsResponse{
		Total:      stats.Total,
		Unaccepted: stats.Unaccepted,
		Accepted:   stats.Accepted,
		Responders: stats.Responders,
	}
}

// DTOToResponder возвращает nil, если профиль не передан
func DTOToResponder(dto *ResponderInput) *models.Responder {
	if dto == nil {
		return nil
	}
	return &models.Responder{
		Name:     dto.Name,
		Distance: dto.Distance,
		Rating:   dto.Rating,
	}
}

// DTOToDraft переводит форму в черновик. Медпрофиль по умолчанию передается.
func DTOToDraft(dto HelpRequestInput) flow.Draft {
	share := true
	if dto.ShareMedicalProfile != nil {
		share = *dto.ShareMedicalProfile
	}
	return flow.Draft{
		Type:                models.EmergencyType(dto.Type),
		Description:         dto.Description,
		Location:            dto.Location,
		Coordinates:         models.Coordinates{Lat: dto.Latitude, Lng: dto.Longitude},
		ShareMedicalProfile: share,
		CanSMS:              dto.CanSMS,
	}
}

func SessionToResponse(s flow.Session) *SessionResponse {
	resp := &SessionResponse{
		ID:        s.ID,
		State:     string(s.State),
		Type:      string(s.Draft.Type),
		RequestID: s.RequestID,
		Error:     s.LastError,
		UpdatedAt: s.UpdatedAt,
	}
	if s.Helper != nil {
		resp.Helper = &HelperResponse{
			ID:       s.Helper.ID,
			Name:     s.Helper.Name,
			Distance: s.Helper.Distance,
			ETA:      s.Helper.ETA,
			Rating:   s.Helper.Rating,
		}
	}
	return resp
}

func DeskToResponse(d flow.Desk) DeskResponse {
	return DeskResponse{
		ProviderID:        d.ProviderID,
		SelectedRequestID: d.SelectedRequestID,
		ETAMinutes:        d.ETAMinutes,
		ETA:               models.FormatETA(d.ETAMinutes),
	}
}

package data

import (
	"net/http"
)

type keyInfoView struct {
	ID           string   `json:"id"`
	Capabilities []string `json:"capabilities"`
}

// EndpointGetKeyInfo handles the 'GET /v1/key_info' endpoint
func (service *Service) EndpointGetKeyInfo(writer http.ResponseWriter, request *http.Request) {
	key := keyFromContext(request.Context())
	service.writer.WriteJSON(writer, &keyInfoView{
		ID:           key.ID,
		Capabilities: key.Capabilities.Dynamic().Choices(),
	})
}

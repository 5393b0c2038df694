package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	chatHandler "github.com/syam1133/portfolio-assistant/internal/handler/chat"
	contactHandler "github.com/syam1133/portfolio-assistant/internal/handler/contact"
	middlewarePkg "github.com/syam1133/portfolio-assistant/internal/middleware"
	contactService "github.com/syam1133/portfolio-assistant/internal/service/contact"
	"github.com/syam1133/portfolio-assistant/internal/service/conversation"
)

// NewRouter wires HTTP routes to core services. contactSvc may be nil when no
// relay access key is configured; the contact route is simply not mounted.
func NewRouter(convSvc *conversation.Service, contactSvc *contactService.Service) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS)

	chat := chatHandler.New(convSvc)
	socket := chatHandler.NewSocket(convSvc)

	r.Route("/api", func(api chi.Router) {
		chat.RegisterRoutes(api)
		socket.RegisterRoutes(api)

		if contactSvc != nil {
			contact := contactHandler.New(contactSvc)
			contact.RegisterRoutes(api)
		}
	})

	return r
}

package app

import (
	"go.uber.org/fx"

	"github.com/fiskerit/intake_backend/internal/repo"
	"github.com/fiskerit/intake_backend/internal/service/contact"
	"github.com/fiskerit/intake_backend/pkg/email"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideContactService,
	),
)

func ProvideContactService(client *repo.Client, emailClient *email.Client) contact.Service {
	return contact.New(client.Contact, emailClient)
}

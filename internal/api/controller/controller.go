package controller

import (
	"github.com/ougirez/luxcompare/internal/service/auth"
	"github.com/ougirez/luxcompare/internal/service/identify"
	"github.com/ougirez/luxcompare/internal/service/locations"
	"github.com/ougirez/luxcompare/internal/service/pricing"
	"github.com/ougirez/luxcompare/internal/service/research"
	"github.com/ougirez/luxcompare/internal/service/shortlist"
)

type Services struct {
	Pricing   *pricing.Service
	Identify  *identify.Service
	Locations *locations.Service
	Research  *research.Service
	Shortlist *shortlist.Service
	Auth      *auth.Service
}

type Controller struct {
	pricing   *pricing.Service
	identify  *identify.Service
	locations *locations.Service
	research  *research.Service
	shortlist *shortlist.Service
	auth      *auth.Service
}

func NewController(services Services) *Controller {
	return &Controller{
		pricing:   services.Pricing,
		identify:  services.Identify,
		locations: services.Locations,
		research:  services.Research,
		shortlist: services.Shortlist,
		auth:      services.Auth,
	}
}

package cmd

import (
	"log/slog"

	"gorm.io/gorm"

	httpin "shipping/internal/adapters/in/http"
	"shipping/internal/adapters/out/postgres"
	"shipping/internal/adapters/out/postgres/rolerepo"
	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/domain/model/access"
	"shipping/internal/core/domain/services"
	"shipping/internal/core/ports"
	"shipping/internal/jobs"
)

// CompositionRoot wires the adapters, domain services and use-case handlers
// together. Command handlers get fresh unit-of-work instances per call;
// query handlers read either through repositories backed by the shared
// connection or straight through GORM.
type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	engine     *access.Engine
	resolver   services.AvailabilityResolver
	logger     *slog.Logger
}

// NewCompositionRoot creates the composition root over an open database
// connection.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	// Role lookups run outside any transaction: roles are fetched fresh on
	// every authorization check.
	engine, err := access.NewEngine(rolerepo.NewGormRoleRepository(gormDB))
	if err != nil {
		return nil, err
	}

	return &CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		engine:     engine,
		resolver:   services.NewAvailabilityResolver(),
		logger:     logger,
	}, nil
}

// readSide returns repositories backed by the shared connection, outside any
// transaction. The unit of work hands out plain-connection repositories
// until Begin is called, which is exactly what the query side needs.
func (c *CompositionRoot) readSide() ports.UnitOfWork {
	return c.uowFactory.Create()
}

func (c *CompositionRoot) offerAssembler() queries.OfferAssembler {
	uow := c.readSide()
	return queries.NewOfferAssembler(
		uow.CompanyRepository(),
		uow.PackageRepository(),
		uow.CompanyPackageRepository(),
	)
}

func (c *CompositionRoot) candidateAssembler() queries.CandidateAssembler {
	return queries.NewCandidateAssembler(c.offerAssembler(), c.readSide().CompanyPackageRepository())
}

// NewHTTPHandlers builds the full handler set the HTTP server routes to.
func (c *CompositionRoot) NewHTTPHandlers() httpin.Handlers {
	return httpin.Handlers{
		CreateCountry:        commands.NewCreateCountryCommandHandler(c.engine, c.countryUoWFactory()),
		CreateCompany:        commands.NewCreateCompanyCommandHandler(c.engine, c.companyUoWFactory()),
		UpdateCompany:        commands.NewUpdateCompanyCommandHandler(c.engine, c.companyUoWFactory()),
		DeleteCompany:        commands.NewDeleteCompanyCommandHandler(c.engine, c.companyUoWFactory()),
		CreatePackage:        commands.NewCreatePackageCommandHandler(c.engine, c.packageUoWFactory()),
		UpdatePackage:        commands.NewUpdatePackageCommandHandler(c.engine, c.packageUoWFactory()),
		DeletePackage:        commands.NewDeletePackageCommandHandler(c.engine, c.packageUoWFactory()),
		CreateCompanyPackage: commands.NewCreateCompanyPackageCommandHandler(c.engine, c.catalogUoWFactory()),
		DeleteCompanyPackage: commands.NewDeleteCompanyPackageCommandHandler(c.engine, c.catalogUoWFactory()),
		ReplaceShippingRates: commands.NewReplaceShippingRatesCommandHandler(c.engine, c.rateUoWFactory()),
		UpsertShipping:       commands.NewUpsertShippingCommandHandler(c.engine, c.bindingUoWFactory()),
		DeleteShipping:       commands.NewDeleteShippingCommandHandler(c.engine, c.bindingUoWFactory()),
		CreateRole:           commands.NewCreateRoleCommandHandler(c.engine, c.roleUoWFactory()),
		DeleteRole:           commands.NewDeleteRoleCommandHandler(c.engine, c.roleUoWFactory()),

		FindCountry:      queries.NewFindCountryQueryHandler(c.engine, c.readSide().CountryRepository()),
		CountriesTree:    queries.NewGetCountriesTreeQueryHandler(c.engine, c.readSide().CountryRepository()),
		CountriesFlatten: queries.NewGetCountriesFlattenQueryHandler(c.engine, c.readSide().CountryRepository()),
		Companies:        queries.NewGetCompaniesQueryHandler(c.engine, c.gormDB),
		Company:          queries.NewGetCompanyQueryHandler(c.engine, c.readSide().CompanyRepository()),
		Packages:         queries.NewGetPackagesQueryHandler(c.engine, c.gormDB),
		Package:          queries.NewGetPackageQueryHandler(c.engine, c.readSide().PackageRepository()),
		CompanyPackages:  queries.NewGetCompanyPackagesQueryHandler(c.engine, c.gormDB),
		CompanyPackage:   queries.NewGetCompanyPackageQueryHandler(c.engine, c.gormDB),
		ShippingRates:    queries.NewGetShippingRatesQueryHandler(c.engine, c.readSide().RateRepository()),
		DeliveryPrice: queries.NewGetDeliveryPriceQueryHandler(
			c.engine,
			c.offerAssembler(),
			c.readSide().CompanyPackageRepository(),
			c.readSide().RateRepository(),
		),
		AvailablePackages: queries.NewGetAvailablePackagesQueryHandler(
			c.engine,
			c.offerAssembler(),
			c.readSide().CompanyPackageRepository(),
			c.resolver,
		),
		FindShipping: queries.NewFindAvailableShippingQueryHandler(
			c.engine,
			c.readSide().BindingRepository(),
			c.candidateAssembler(),
			c.resolver,
		),
		AvailablePackage: queries.NewGetAvailablePackageQueryHandler(
			c.engine,
			c.readSide().BindingRepository(),
			c.candidateAssembler(),
		),
		AvailableByShipping: queries.NewGetAvailablePackageByShippingIDQueryHandler(
			c.engine,
			c.readSide().BindingRepository(),
			c.candidateAssembler(),
		),
		FindShippingV2: queries.NewFindAvailableShippingV2QueryHandler(
			c.engine,
			c.readSide().BindingRepository(),
			c.candidateAssembler(),
			c.readSide().RateRepository(),
			c.resolver,
		),
		AvailableByShippingV2: queries.NewGetAvailablePackageByShippingIDV2QueryHandler(
			c.engine,
			c.readSide().BindingRepository(),
			c.candidateAssembler(),
			c.readSide().RateRepository(),
			c.resolver,
		),
		Shipping: queries.NewGetShippingQueryHandler(c.engine, c.readSide().BindingRepository()),
		Roles:    queries.NewGetRolesQueryHandler(c.engine, c.readSide().RoleRepository()),
	}
}

// NewJobManager builds the scheduled jobs over a non-transactional rate
// repository.
func (c *CompositionRoot) NewJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.readSide().RateRepository(), c.config.RateAuditSchedule, c.logger)
}

func (c *CompositionRoot) countryUoWFactory() commands.CountryUoWFactory {
	return FuncCountryUoWFactory(func() commands.CountryUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) companyUoWFactory() commands.CompanyUoWFactory {
	return FuncCompanyUoWFactory(func() commands.CompanyUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) packageUoWFactory() commands.PackageUoWFactory {
	return FuncPackageUoWFactory(func() commands.PackageUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) catalogUoWFactory() commands.CatalogUoWFactory {
	return FuncCatalogUoWFactory(func() commands.CatalogUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) rateUoWFactory() commands.RateUoWFactory {
	return FuncRateUoWFactory(func() commands.RateUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) bindingUoWFactory() commands.BindingUoWFactory {
	return FuncBindingUoWFactory(func() commands.BindingUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) roleUoWFactory() commands.RoleUoWFactory {
	return FuncRoleUoWFactory(func() commands.RoleUoW { return c.uowFactory.Create() })
}

type FuncCountryUoWFactory func() commands.CountryUoW

func (f FuncCountryUoWFactory) Create() commands.CountryUoW { return f() }

type FuncCompanyUoWFactory func() commands.CompanyUoW

func (f FuncCompanyUoWFactory) Create() commands.CompanyUoW { return f() }

type FuncPackageUoWFactory func() commands.PackageUoW

func (f FuncPackageUoWFactory) Create() commands.PackageUoW { return f() }

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW { return f() }

type FuncRateUoWFactory func() commands.RateUoW

func (f FuncRateUoWFactory) Create() commands.RateUoW { return f() }

type FuncBindingUoWFactory func() commands.BindingUoW

func (f FuncBindingUoWFactory) Create() commands.BindingUoW { return f() }

type FuncRoleUoWFactory func() commands.RoleUoW

func (f FuncRoleUoWFactory) Create() commands.RoleUoW { return f() }

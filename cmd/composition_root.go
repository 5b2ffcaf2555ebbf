package cmd

import (
	"log/slog"
	"strconv"
	"time"

	"transportes/internal/adapters/in/http"
	"transportes/internal/adapters/out/postgres"
	"transportes/internal/adapters/out/security"
	"transportes/internal/core/application/usecases/commands"
	"transportes/internal/core/application/usecases/queries"
	"transportes/internal/jobs"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const defaultTokenLifetime = 24 * time.Hour

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	hasher     security.BcryptPasswordHasher
	issuer     security.JWTTokenIssuer
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	cost, err := strconv.Atoi(config.BcryptCost)
	if err != nil {
		cost = bcrypt.DefaultCost
	}

	lifetime, err := time.ParseDuration(config.JWTLifetime)
	if err != nil || lifetime <= 0 {
		lifetime = defaultTokenLifetime
	}

	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		hasher:     security.NewBcryptPasswordHasher(cost),
		issuer:     security.NewJWTTokenIssuer([]byte(config.JWTSecret), config.JWTIssuer, lifetime),
	}
}

func (c *CompositionRoot) CreateCrearVehiculoCommandHandler() commands.CrearVehiculoCommandHandler {
	var f commands.VehiculoUoWFactory = FuncVehiculoUoWFactory(func() commands.VehiculoUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCrearVehiculoCommandHandler(f)
}

func (c *CompositionRoot) CreateActualizarVehiculoCommandHandler() commands.ActualizarVehiculoCommandHandler {
	var f commands.VehiculoUoWFactory = FuncVehiculoUoWFactory(func() commands.VehiculoUoW {
		return c.uowFactory.Create()
	})
	return commands.NewActualizarVehiculoCommandHandler(f)
}

func (c *CompositionRoot) CreateDesactivarVehiculoCommandHandler() commands.DesactivarVehiculoCommandHandler {
	var f commands.VehiculoUoWFactory = FuncVehiculoUoWFactory(func() commands.VehiculoUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDesactivarVehiculoCommandHandler(f)
}

func (c *CompositionRoot) CreateCrearConductorCommandHandler() commands.CrearConductorCommandHandler {
	var f commands.ConductorUoWFactory = FuncConductorUoWFactory(func() commands.ConductorUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCrearConductorCommandHandler(f)
}

func (c *CompositionRoot) CreateDesactivarConductorCommandHandler() commands.DesactivarConductorCommandHandler {
	var f commands.ConductorUoWFactory = FuncConductorUoWFactory(func() commands.ConductorUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDesactivarConductorCommandHandler(f)
}

func (c *CompositionRoot) CreateAsignarConductorAVehiculoCommandHandler() commands.AsignarConductorAVehiculoCommandHandler {
	var f commands.FlotaUoWFactory = FuncFlotaUoWFactory(func() commands.FlotaUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAsignarConductorAVehiculoCommandHandler(f)
}

func (c *CompositionRoot) CreateDevolverVehiculoCommandHandler() commands.DevolverVehiculoCommandHandler {
	var f commands.FlotaUoWFactory = FuncFlotaUoWFactory(func() commands.FlotaUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDevolverVehiculoCommandHandler(f)
}

func (c *CompositionRoot) CreateCrearPedidoCommandHandler() commands.CrearPedidoCommandHandler {
	var f commands.FlotaUoWFactory = FuncFlotaUoWFactory(func() commands.FlotaUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCrearPedidoCommandHandler(f)
}

func (c *CompositionRoot) CreateCambiarEstadoPedidoCommandHandler() commands.CambiarEstadoPedidoCommandHandler {
	var f commands.PedidoUoWFactory = FuncPedidoUoWFactory(func() commands.PedidoUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCambiarEstadoPedidoCommandHandler(f)
}

func (c *CompositionRoot) CreateCambiarVehiculoPedidoCommandHandler() commands.CambiarVehiculoPedidoCommandHandler {
	var f commands.FlotaUoWFactory = FuncFlotaUoWFactory(func() commands.FlotaUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCambiarVehiculoPedidoCommandHandler(f)
}

func (c *CompositionRoot) CreateRegistrarUsuarioCommandHandler() commands.RegistrarUsuarioCommandHandler {
	var f commands.UsuarioUoWFactory = FuncUsuarioUoWFactory(func() commands.UsuarioUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegistrarUsuarioCommandHandler(f, c.hasher)
}

func (c *CompositionRoot) CreateCambiarPasswordCommandHandler() commands.CambiarPasswordCommandHandler {
	var f commands.UsuarioUoWFactory = FuncUsuarioUoWFactory(func() commands.UsuarioUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCambiarPasswordCommandHandler(f, c.hasher)
}

func (c *CompositionRoot) CreateAutenticarUsuarioCommandHandler() commands.AutenticarUsuarioCommandHandler {
	var f commands.UsuarioUoWFactory = FuncUsuarioUoWFactory(func() commands.UsuarioUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAutenticarUsuarioCommandHandler(f, c.hasher, c.issuer)
}

func (c *CompositionRoot) CreateGetVehiculosLibresQueryHandler() queries.GetVehiculosLibresQueryHandler {
	return queries.NewGetVehiculosLibresQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetConductoresSinVehiculosQueryHandler() queries.GetConductoresSinVehiculosQueryHandler {
	return queries.NewGetConductoresSinVehiculosQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPedidosActivosQueryHandler() queries.GetPedidosActivosQueryHandler {
	return queries.NewGetPedidosActivosQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetVehiculosPorConductorQueryHandler() queries.GetVehiculosPorConductorQueryHandler {
	return queries.NewGetVehiculosPorConductorQueryHandler(c.gormDB)
}

// CreateHTTPServer wires every command and query handler into the REST server.
func (c *CompositionRoot) CreateHTTPServer() *http.Server {
	return http.NewServer(
		c.CreateCrearVehiculoCommandHandler(),
		c.CreateActualizarVehiculoCommandHandler(),
		c.CreateDesactivarVehiculoCommandHandler(),
		c.CreateCrearConductorCommandHandler(),
		c.CreateDesactivarConductorCommandHandler(),
		c.CreateAsignarConductorAVehiculoCommandHandler(),
		c.CreateDevolverVehiculoCommandHandler(),
		c.CreateCrearPedidoCommandHandler(),
		c.CreateCambiarEstadoPedidoCommandHandler(),
		c.CreateCambiarVehiculoPedidoCommandHandler(),
		c.CreateRegistrarUsuarioCommandHandler(),
		c.CreateCambiarPasswordCommandHandler(),
		c.CreateAutenticarUsuarioCommandHandler(),
		c.CreateGetVehiculosLibresQueryHandler(),
		c.CreateGetConductoresSinVehiculosQueryHandler(),
		c.CreateGetPedidosActivosQueryHandler(),
		c.CreateGetVehiculosPorConductorQueryHandler(),
	)
}

// CreateJobManager wires the scheduled jobs to the read side.
func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateGetVehiculosLibresQueryHandler(),
		c.CreateGetConductoresSinVehiculosQueryHandler(),
		c.CreateGetPedidosActivosQueryHandler(),
		c.config.ReportCronSpec,
		logger,
	)
}

type FuncVehiculoUoWFactory func() commands.VehiculoUoW

func (f FuncVehiculoUoWFactory) Create() commands.VehiculoUoW {
	return f()
}

type FuncConductorUoWFactory func() commands.ConductorUoW

func (f FuncConductorUoWFactory) Create() commands.ConductorUoW {
	return f()
}

type FuncPedidoUoWFactory func() commands.PedidoUoW

func (f FuncPedidoUoWFactory) Create() commands.PedidoUoW {
	return f()
}

type FuncUsuarioUoWFactory func() commands.UsuarioUoW

func (f FuncUsuarioUoWFactory) Create() commands.UsuarioUoW {
	return f()
}

type FuncFlotaUoWFactory func() commands.FlotaUoW

func (f FuncFlotaUoWFactory) Create() commands.FlotaUoW {
	return f()
}

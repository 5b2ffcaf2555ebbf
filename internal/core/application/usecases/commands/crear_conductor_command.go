package commands

import (
	"errors"
	"strings"

	"transportes/internal/core/domain/model/conductor"
	"transportes/internal/core/domain/model/kernel"
	"transportes/internal/pkg/guard"
)

var (
	ErrCrearConductorCommandIsNotConstructed = errors.New(
		"CrearConductorCommand must be created via NewCrearConductorCommand constructor",
	)
	ErrNombreIsRequired = errors.New("nombre is required")
)

// CrearConductorCommand represents a request to register a new driver.
// A unique ID is generated at construction so the caller can read it back
// after handling.
type CrearConductorCommand struct { //nolint:recvcheck //using for validation
	conductorID kernel.UUID
	nombre      string
	licencia    conductor.LicenciaConducir

	guard guard.ConstructorGuard
}

// NewCrearConductorCommand creates a command to register a new driver.
// The license must be an already-constructed value object.
func NewCrearConductorCommand(nombre string, licencia conductor.LicenciaConducir) (CrearConductorCommand, error) {
	command := CrearConductorCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setConductorID(kernel.NewUUID()),
		command.setNombre(nombre),
		command.setLicencia(licencia),
	); err != nil {
		return CrearConductorCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CrearConductorCommand) Validate() error {
	return c.guard.Validate(ErrCrearConductorCommandIsNotConstructed)
}

// ConductorID returns the generated driver ID.
func (c CrearConductorCommand) ConductorID() kernel.UUID {
	return c.conductorID
}

// Nombre returns the driver name from the command.
func (c CrearConductorCommand) Nombre() string {
	return c.nombre
}

// Licencia returns the driving license from the command.
func (c CrearConductorCommand) Licencia() conductor.LicenciaConducir {
	return c.licencia
}

func (c *CrearConductorCommand) setConductorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.conductorID = id
	return nil
}

func (c *CrearConductorCommand) setNombre(nombre string) error {
	if strings.TrimSpace(nombre) == "" {
		return ErrNombreIsRequired
	}

	c.nombre = nombre
	return nil
}

func (c *CrearConductorCommand) setLicencia(licencia conductor.LicenciaConducir) error {
	if err := licencia.Validate(); err != nil {
		return err
	}

	c.licencia = licencia
	return nil
}

package api

import (
	"bytes"
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oaxley/gobrainfuck/device"
	"github.com/oaxley/gobrainfuck/program"
	"github.com/oaxley/gobrainfuck/vm"
	"go.uber.org/zap"
)

// defaultMaxSteps bounds each request's execution so a looping
// program cannot wedge the server.
const defaultMaxSteps = 10_000_000

type ServerConfig struct {
	ListenerAddr string
	Logger       *zap.Logger
	// per-request instruction budget; defaultMaxSteps if zero
	MaxSteps int
}

type Server struct {
	ServerConfig

	logger *zap.Logger
}

func NewServer(config ServerConfig) (*Server, error) {
	if config.Logger == nil {
		config.Logger, _ = zap.NewDevelopment()
	}
	if config.MaxSteps == 0 {
		config.MaxSteps = defaultMaxSteps
	}
	s := &Server{
		ServerConfig: config,
		logger:       config.Logger.Named("api"),
	}

	return s, nil
}

func (s *Server) Start() error {
	s.logger.Info("api server starting",
		zap.String("addr", s.ListenerAddr))

	return s.router().Start(s.ListenerAddr)
}

func (s *Server) router() *echo.Echo {
	echoer := echo.New()
	echoer.HideBanner = true

	echoer.POST("/run", s.handleRun)
	echoer.GET("/health", s.handleHealth)

	return echoer
}

func (s *Server) handleHealth(ectx echo.Context) error {
	return ectx.JSON(http.StatusOK,
		map[string]any{"status": "ok"})
}

// handleRun executes the source in the request body. The read
// instruction is fed from the 'input' query parameter; output is
// captured in memory and returned.
func (s *Server) handleRun(ectx echo.Context) error {
	source, err := io.ReadAll(ectx.Request().Body)
	if err != nil {
		return ectx.JSON(http.StatusBadRequest,
			map[string]any{
				"error": err.Error(),
			})
	}

	prog, err := program.Load(bytes.NewReader(source))
	if err != nil {
		return ectx.JSON(http.StatusBadRequest,
			map[string]any{
				"error": err.Error(),
			})
	}

	in := device.NewBuffer([]byte(ectx.QueryParam("input")))
	out := device.NewBuffer(nil)

	machine, err := vm.NewVM(prog.Bytes(),
		vm.LoggerOpt(s.logger),
		vm.InputOpt(in),
		vm.OutputOpt(out),
		vm.MaxStepsOpt(s.MaxSteps),
	)
	if err != nil {
		return ectx.JSON(http.StatusBadRequest,
			map[string]any{
				"error": err.Error(),
			})
	}

	err = machine.Run()
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, vm.ErrStepLimit) {
			status = http.StatusUnprocessableEntity
		}
		return ectx.JSON(status,
			map[string]any{
				"error":  err.Error(),
				"steps":  machine.Steps(),
				"output": out.String(),
			})
	}

	s.logger.Debug("program ran",
		zap.Int("bytes", prog.Len()),
		zap.Int("steps", machine.Steps()),
	)

	return ectx.JSON(http.StatusOK,
		map[string]any{
			"bytes":  prog.Len(),
			"steps":  machine.Steps(),
			"output": out.String(),
		})
}

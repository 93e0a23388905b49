package main

import (
	"bufio"
	"citabot-service/internal/app/config"
	"citabot-service/internal/app/services/core/sessions"
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
)

const defaultStateFile = ".citabot/session.json"

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	internalConfig := config.NewInternalConfig()
	log := newClientLogger()
	defer log.Sync()

	statePath := internalConfig.Client.StateFilePath
	if statePath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "cannot resolve home directory:", err)
			os.Exit(1)
		}
		statePath = filepath.Join(home, defaultStateFile)
	}
	if err := os.MkdirAll(filepath.Dir(statePath), 0o700); err != nil {
		fmt.Fprintln(os.Stderr, "cannot create state directory:", err)
		os.Exit(1)
	}

	stateRepo := sessions.NewStateFileRepository(statePath)

	var store *sessions.Store
	gateway := sessions.NewHTTPGateway(internalConfig.Client.BaseURL, log, func() {
		if store != nil {
			store.Reset()
		}
	})
	store = sessions.NewSessionStore(gateway, stateRepo, log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var err error
	switch os.Args[1] {
	case "login":
		err = runLogin(ctx, store, os.Args[2:])
	case "whoami":
		err = runWhoami(store)
	case "menu":
		err = runMenu(store)
	case "can":
		err = runCan(store, os.Args[2:])
	case "logout":
		store.Logout(ctx)
		fmt.Println("sesión cerrada")
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runLogin(ctx context.Context, store *sessions.Store, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	identifier := fs.String("u", "", "email o username")
	secret := fs.String("p", "", "contraseña (se pide por stdin si falta)")
	fs.Parse(args)

	if *identifier == "" {
		return fmt.Errorf("login: falta -u")
	}
	if *secret == "" {
		fmt.Fprint(os.Stderr, "contraseña: ")
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil {
			return fmt.Errorf("login: no se pudo leer la contraseña: %w", err)
		}
		*secret = strings.TrimRight(line, "\r\n")
	}

	user, err := store.Login(ctx, *identifier, *secret)
	if err != nil {
		return err
	}
	fmt.Printf("sesión iniciada como %s (%s)\n", user.Usuario.Username, user.Usuario.Email)
	return nil
}

func runWhoami(store *sessions.Store) error {
	state := store.State()
	if !state.IsAuthenticated {
		return fmt.Errorf("no hay sesión activa")
	}

	user := state.User
	fmt.Printf("usuario:     %s %s (%s)\n", user.Usuario.Nombre, user.Usuario.Apellido, user.Usuario.Username)
	fmt.Printf("email:       %s\n", user.Usuario.Email)
	if user.EsSuperadmin {
		fmt.Println("superadmin:  sí")
	}
	if user.RolActivo != "" {
		fmt.Printf("rol activo:  %s\n", user.RolActivo)
	}
	if actual := user.ConsultorioActual(); actual != "" {
		fmt.Printf("consultorio: %s\n", actual)
	}
	for _, c := range user.ConsultoriosUsuario {
		fmt.Printf("  - %s (%s) rol=%s\n", c.Nombre, c.ConsultorioID, c.RolNombre)
	}
	return nil
}

func runMenu(store *sessions.Store) error {
	evaluator := store.Evaluator()
	if evaluator == nil {
		return fmt.Errorf("no hay sesión activa")
	}

	tree := evaluator.MenuTree()
	if len(tree) == 0 {
		fmt.Println("(sin módulos visibles)")
		return nil
	}
	for _, node := range tree {
		fmt.Printf("%s  %s\n", node.Nombre, node.Ruta)
		for _, hijo := range node.Hijos {
			fmt.Printf("  %s  %s\n", hijo.Nombre, hijo.Ruta)
		}
	}
	return nil
}

func runCan(store *sessions.Store, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("uso: adminctl can MODULO [ACCION]")
	}

	evaluator := store.Evaluator()
	if evaluator == nil {
		return fmt.Errorf("no hay sesión activa")
	}

	module := strings.ToUpper(args[0])
	allowed := false
	if len(args) == 2 {
		allowed = evaluator.Can(strings.ToUpper(args[1]), module)
	} else {
		allowed = evaluator.CanAccess(module)
	}
	if !allowed {
		fmt.Println("denegado")
		os.Exit(1)
	}
	fmt.Println("permitido")
	return nil
}

func newClientLogger() *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	log, err := cfg.Build()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cannot initialize logger:", err)
		os.Exit(1)
	}
	return log
}

func usage() {
	fmt.Fprintln(os.Stderr, `uso: adminctl COMANDO [flags]

comandos:
  login -u IDENTIFICADOR [-p CONTRASEÑA]   inicia sesión contra el backend
  whoami                                   muestra el perfil de la sesión local
  menu                                     muestra el menú visible para la sesión
  can MODULO [ACCION]                      evalúa un permiso (exit 0/1)
  logout                                   cierra la sesión`)
}

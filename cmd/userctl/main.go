package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dropDatabas3/userctl/internal/cli"
	"github.com/dropDatabas3/userctl/internal/config"
	"github.com/dropDatabas3/userctl/internal/domain/repository"
	"github.com/dropDatabas3/userctl/internal/observability/logger"
	"github.com/dropDatabas3/userctl/internal/service"
	storefs "github.com/dropDatabas3/userctl/internal/store/fs"
	"github.com/dropDatabas3/userctl/internal/validation"
)

func main() {
	cfg := config.Load()

	logger.Init(logger.Config{
		Env:         cfg.Env,
		Level:       cfg.LogLevel,
		ServiceName: "userctl",
	})
	defer func() { _ = logger.Sync() }()

	svc := service.NewUserService(storefs.New(cfg.DataFile))

	root := &cobra.Command{
		Use:   "userctl",
		Short: "CLI para administrar registros de usuario sobre un archivo JSON",
		Long: "userctl administra un conjunto de registros de usuario (email, username,\n" +
			"phone, age) persistido como JSON en disco. La ruta del archivo viene del\n" +
			"env var USER_DATA_FILE (default: ./userdata.json).",
		SilenceUsage: true,
	}

	createCmd := &cobra.Command{
		Use:   "create <email> <username> <phone> <age>",
		Short: "Crea un usuario nuevo",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			age, err := validation.ParseAge(args[3])
			if err != nil {
				return cli.WrapVerb("create", err)
			}
			u, err := svc.Create(cmd.Context(), repository.CreateUserInput{
				Email:    args[0],
				Username: args[1],
				Phone:    args[2],
				Age:      age,
			})
			if err != nil {
				return cli.WrapVerb("create", err)
			}
			fmt.Println("User created successfully:")
			cli.FprintUser(os.Stdout, u)
			return nil
		},
	}

	updateCmd := &cobra.Command{
		Use:   "update <email> <username> <phone> <age>",
		Short: "Actualiza los atributos de un usuario existente (el email no cambia)",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			age, err := validation.ParseAge(args[3])
			if err != nil {
				return cli.WrapVerb("update", err)
			}
			u, err := svc.Update(cmd.Context(), repository.UpdateUserInput{
				Email:    args[0],
				Username: args[1],
				Phone:    args[2],
				Age:      age,
			})
			if err != nil {
				return cli.WrapVerb("update", err)
			}
			fmt.Println("User updated successfully:")
			cli.FprintUser(os.Stdout, u)
			return nil
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Lista todos los usuarios (orden estable por email)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			users, err := svc.List(cmd.Context())
			if err != nil {
				return cli.WrapVerb("list", err)
			}
			cli.FprintUserList(os.Stdout, users)
			return nil
		},
	}

	getCmd := &cobra.Command{
		Use:   "get <email>",
		Short: "Muestra el detalle de un usuario",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := svc.Get(cmd.Context(), args[0])
			if err != nil {
				return cli.WrapVerb("get", err)
			}
			cli.FprintUser(os.Stdout, u)
			return nil
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete <email>",
		Short: "Elimina un usuario",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := svc.Delete(cmd.Context(), args[0]); err != nil {
				return cli.WrapVerb("delete", err)
			}
			fmt.Println("User deleted successfully")
			return nil
		},
	}

	root.AddCommand(createCmd, updateCmd, listCmd, getCmd, deleteCmd)

	// cobra ya imprimió "Error: <err>" en stderr; acá solo mapeamos el
	// exit code no-cero.
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

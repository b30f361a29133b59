// seed crea (o reutiliza) un usuario de demostración y regenera su
// portafolio de ejemplo: 12 clientes con proyectos y facturas repartidas en
// el último año.
//
// Uso: go run ./cmd/seed [-email demo@clientiq.dev] [-password demo1234]
// Requiere la misma configuración de base de datos que la API.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/crypto/bcrypt"

	"github.com/Shaikh-Javeriya/ClientIQ-PWA/internal/application/usecase"
	"github.com/Shaikh-Javeriya/ClientIQ-PWA/internal/domain/entity"
	"github.com/Shaikh-Javeriya/ClientIQ-PWA/internal/infrastructure/postgres"
	"github.com/Shaikh-Javeriya/ClientIQ-PWA/pkg/config"
)

func main() {
	email := flag.String("email", "demo@clientiq.dev", "email del usuario demo")
	password := flag.String("password", "demo1234", "password del usuario demo")
	flag.Parse()

	if err := run(*email, *password); err != nil {
		fmt.Fprintf(os.Stderr, "seed: %v\n", err)
		os.Exit(1)
	}
}

func run(email, password string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("cargar configuración: %w", err)
	}

	ctx := context.Background()
	if err := postgres.Migrate(ctx, cfg.DB); err != nil {
		return err
	}
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return err
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	user, err := userRepo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}
		now := time.Now().UTC()
		user = &entity.User{
			ID:           uuid.New().String(),
			Email:        email,
			PasswordHash: string(hash),
			Name:         "Demo User",
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := userRepo.Create(ctx, user); err != nil {
			return err
		}
		fmt.Printf("usuario demo creado: %s\n", email)
	} else {
		fmt.Printf("usuario demo existente: %s\n", email)
	}

	sampleUC := usecase.NewSampleDataUseCase(postgres.NewTxRunner(pool))
	bar := progressbar.Default(int64(sampleUC.ClientCount()), "generando clientes")
	if err := sampleUC.Generate(ctx, user.ID, func() { _ = bar.Add(1) }); err != nil {
		return err
	}
	_ = bar.Finish()

	fmt.Println("portafolio de ejemplo generado")
	return nil
}

package usecase

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Shaikh-Javeriya/ClientIQ-PWA/internal/domain/entity"
	"github.com/Shaikh-Javeriya/ClientIQ-PWA/internal/domain/repository"
)

// Portafolio de ejemplo: nombres, tiers y regiones del dataset de demo.
var (
	sampleClientNames = []string{
		"TechCorp Solutions", "Digital Marketing Pro", "StartupXYZ", "Enterprise Global",
		"Creative Agency", "E-commerce Plus", "FinTech Innovations", "Healthcare Systems",
		"Educational Services", "Manufacturing Co", "Real Estate Group", "Legal Partners",
	}
	sampleTiers   = []string{entity.TierEnterprise, entity.TierSMB, entity.TierFreelance}
	sampleRegions = []string{"North America", "Europe", "Asia Pacific", "Latin America"}
)

// SampleDataUseCase regenera el portafolio de demostración del usuario:
// borra sus datos actuales y crea clientes, proyectos y facturas de ejemplo
// con fechas repartidas en el último año. Todo dentro de una transacción.
type SampleDataUseCase struct {
	tx TxRunner
}

// NewSampleDataUseCase construye el caso de uso.
func NewSampleDataUseCase(tx TxRunner) *SampleDataUseCase {
	return &SampleDataUseCase{tx: tx}
}

// ClientCount cantidad de clientes que genera el dataset (para barras de
// progreso en el seeder CLI).
func (uc *SampleDataUseCase) ClientCount() int { return len(sampleClientNames) }

// Generate regenera los datos de ejemplo del usuario. onClient, si no es nil,
// se invoca una vez por cliente generado (hook de progreso del CLI).
func (uc *SampleDataUseCase) Generate(ctx context.Context, userID string, onClient func()) error {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	now := time.Now().UTC()

	return uc.tx.Run(ctx, func(
		clientRepo repository.ClientRepository,
		projectRepo repository.ProjectRepository,
		invoiceRepo repository.InvoiceRepository,
	) error {
		if err := invoiceRepo.DeleteByUser(ctx, userID); err != nil {
			return err
		}
		if err := projectRepo.DeleteByUser(ctx, userID); err != nil {
			return err
		}
		if err := clientRepo.DeleteByUser(ctx, userID); err != nil {
			return err
		}

		for _, name := range sampleClientNames {
			client := &entity.Client{
				ID:           uuid.New().String(),
				UserID:       userID,
				Name:         name,
				Tier:         sampleTiers[rng.Intn(len(sampleTiers))],
				Region:       sampleRegions[rng.Intn(len(sampleRegions))],
				ContactEmail: fmt.Sprintf("contact@%s.com", strings.ReplaceAll(strings.ToLower(name), " ", "")),
				HourlyRate:   randomAmount(rng, 75, 250),
				CreatedAt:    now,
				UpdatedAt:    now,
			}
			if err := clientRepo.Create(ctx, client); err != nil {
				return err
			}
			if err := uc.generateProjects(ctx, rng, now, client, projectRepo, invoiceRepo); err != nil {
				return err
			}
			if onClient != nil {
				onClient()
			}
		}
		return nil
	})
}

func (uc *SampleDataUseCase) generateProjects(
	ctx context.Context,
	rng *rand.Rand,
	now time.Time,
	client *entity.Client,
	projectRepo repository.ProjectRepository,
	invoiceRepo repository.InvoiceRepository,
) error {
	numProjects := 1 + rng.Intn(3)
	for j := 0; j < numProjects; j++ {
		project := &entity.Project{
			ID:          uuid.New().String(),
			UserID:      client.UserID,
			ClientID:    client.ID,
			Name:        fmt.Sprintf("Project %d for %s", j+1, client.Name),
			Description: fmt.Sprintf("Strategic project for %s", client.Name),
			HourlyRate:  client.HourlyRate,
			HoursWorked: randomAmount(rng, 20, 200),
			Status:      entity.ProjectStatusActive,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := projectRepo.Create(ctx, project); err != nil {
			return err
		}

		numInvoices := 2 + rng.Intn(5)
		for k := 0; k < numInvoices; k++ {
			invoiceDate := now.AddDate(0, 0, -rng.Intn(365))
			dueDate := invoiceDate.AddDate(0, 0, 30)
			hoursBilled := randomAmount(rng, 10, 50)
			amount := hoursBilled.Mul(project.HourlyRate).Round(2)

			invoice := &entity.Invoice{
				ID:          uuid.New().String(),
				UserID:      client.UserID,
				ClientID:    client.ID,
				ProjectID:   project.ID,
				Amount:      amount,
				HoursBilled: hoursBilled,
				InvoiceDate: invoiceDate,
				DueDate:     dueDate,
				Status:      entity.InvoiceStatusUnpaid,
				CreatedAt:   now,
				UpdatedAt:   now,
			}
			// Facturas antiguas: 70% pagadas, el resto vencidas o pendientes.
			if invoiceDate.Before(now.AddDate(0, 0, -rng.Intn(90))) {
				if rng.Float64() > 0.3 {
					paid := dueDate.AddDate(0, 0, rng.Intn(21)-5)
					invoice.PaidDate = &paid
					invoice.Status = entity.InvoiceStatusPaid
				} else if dueDate.Before(now) {
					invoice.Status = entity.InvoiceStatusOverdue
				}
			}
			if err := invoiceRepo.Create(ctx, invoice); err != nil {
				return err
			}
		}
	}
	return nil
}

// randomAmount devuelve un decimal uniforme en [min, max) con 2 decimales.
func randomAmount(rng *rand.Rand, min, max float64) decimal.Decimal {
	return decimal.NewFromFloat(min + rng.Float64()*(max-min)).Round(2)
}

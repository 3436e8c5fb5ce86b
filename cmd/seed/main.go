// Comando de desarrollo: llena una API corriendo con datos de prueba
// realistas (clientes, planes de alimentación y porcinos).
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"granja-porcina/internal/platform/logger"

	"github.com/brianvoe/gofakeit/v6"
)

var planes = []struct {
	descripcion string
	dosis       string
}{
	{"Maíz molido", "2kg/día"},
	{"Concentrado de engorde", "1.5kg/día"},
	{"Concentrado de levante", "1kg/día"},
	{"Suero con salvado", "3L/día"},
}

func main() {
	base := flag.String("base", "http://localhost:8080", "URL base de la API")
	numClientes := flag.Int("clientes", 5, "cantidad de clientes a crear")
	porcinosPorCliente := flag.Int("porcinos", 3, "porcinos por cliente")
	seed := flag.Int64("seed", 0, "semilla del generador (0 = aleatoria)")
	flag.Parse()

	log := logger.NewFromEnv()
	gofakeit.Seed(*seed)

	client := &http.Client{Timeout: 10 * time.Second}

	alimentacionIDs := make([]string, 0, len(planes))
	for _, p := range planes {
		id, err := post(client, *base+"/alimentaciones", map[string]any{
			"descripcion": p.descripcion,
			"dosis":       p.dosis,
		})
		if err != nil {
			log.Error("crear alimentacion", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
		alimentacionIDs = append(alimentacionIDs, id)
	}
	log.Info("alimentaciones creadas", map[string]any{"total": len(alimentacionIDs)})

	totalPorcinos := 0
	for i := 0; i < *numClientes; i++ {
		clienteID, err := post(client, *base+"/clientes", map[string]any{
			"cedula":    gofakeit.DigitN(10),
			"nombres":   gofakeit.FirstName(),
			"apellidos": gofakeit.LastName(),
			"direccion": gofakeit.Address().Street,
			"telefono":  gofakeit.Phone(),
		})
		if err != nil {
			log.Error("crear cliente", map[string]any{"error": err.Error()})
			os.Exit(1)
		}

		for j := 0; j < *porcinosPorCliente; j++ {
			_, err := post(client, *base+"/porcinos", map[string]any{
				"identificacion": fmt.Sprintf("P-%s", gofakeit.DigitN(6)),
				"raza":           gofakeit.Number(1, 3),
				"edad":           gofakeit.Number(0, 36),
				"peso":           gofakeit.Number(5, 180),
				"clienteId":      clienteID,
				"alimentacionId": alimentacionIDs[gofakeit.Number(0, len(alimentacionIDs)-1)],
			})
			if err != nil {
				log.Error("crear porcino", map[string]any{"error": err.Error()})
				os.Exit(1)
			}
			totalPorcinos++
		}
	}

	log.Info("seed completo", map[string]any{
		"clientes": *numClientes,
		"porcinos": totalPorcinos,
	})
}

func post(client *http.Client, url string, payload map[string]any) (string, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	res, err := client.Post(url, "application/json", bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	var body struct {
		ID      string `json:"id"`
		Mensaje string `json:"mensaje"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return "", err
	}
	if res.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("%s: status %d: %s", url, res.StatusCode, body.Mensaje)
	}
	return body.ID, nil
}

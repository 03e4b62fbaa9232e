// Command webhookd listens for GitHub push webhooks and restarts the API
// service when main is updated. It runs beside the API, not inside it.
package main

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"os/exec"

	"github.com/gin-gonic/gin"

	"github.com/motorlot/motorlot/config"
	"github.com/motorlot/motorlot/pkg/logger"
)

type pushEvent struct {
	Ref string `json:"ref"`
}

func main() {
	logger.Init()
	defer logger.Sync()

	cfg := config.Load()
	if cfg.Webhook.Secret == "" {
		logger.Sugar().Fatal("WEBHOOK_SECRET environment variable is required")
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	engine.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Servidor de webhook escuchando.")
	})

	engine.POST("/webhook", func(c *gin.Context) {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.String(http.StatusBadRequest, "No se pudo leer el cuerpo.")
			return
		}

		if !verifySignature(cfg.Webhook.Secret, body, c.GetHeader("X-Hub-Signature-256")) {
			c.String(http.StatusUnauthorized, "La firma del webhook es inválida.")
			return
		}

		var event pushEvent
		if err := json.Unmarshal(body, &event); err != nil {
			c.String(http.StatusBadRequest, "Payload inválido.")
			return
		}

		if event.Ref != "refs/heads/main" {
			logger.Sugar().Infof("push a %s ignorado", event.Ref)
			c.String(http.StatusOK, "Push ignorado (no es la rama main).")
			return
		}

		logger.Sugar().Info("push a main recibido, iniciando despliegue")
		out, err := exec.Command(cfg.Webhook.Script).CombinedOutput()
		if err != nil {
			logger.Sugar().Errorf("restart script failed: %v: %s", err, out)
			c.String(http.StatusInternalServerError, "Error en el servidor durante el despliegue.")
			return
		}
		logger.Sugar().Infof("restart script output: %s", out)
		c.String(http.StatusOK, "Despliegue iniciado con éxito.")
	})

	logger.Sugar().Infof("webhook listener on port %s", cfg.Webhook.Port)
	if err := engine.Run(":" + cfg.Webhook.Port); err != nil {
		logger.Sugar().Fatalf("failed to start webhook listener: %v", err)
	}
}

// verifySignature checks the GitHub HMAC-SHA256 header in constant time.
func verifySignature(secret string, body []byte, header string) bool {
	if header == "" {
		return false
	}
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	expected := "sha256=" + hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(header), []byte(expected))
}

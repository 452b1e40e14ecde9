// mockapi is a stand-in for the shop backend so the admin client can be
// developed against localhost. State lives in memory and resets on restart;
// uploaded images land in a local directory served as static files.
package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"

	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"github.com/Hosannah10/julidsfashion-admin/internal/mailer"
	"github.com/Hosannah10/julidsfashion-admin/internal/models"
	"github.com/Hosannah10/julidsfashion-admin/internal/session"
	"github.com/Hosannah10/julidsfashion-admin/internal/shared/slug"
)

type store struct {
	mu sync.Mutex

	adminEmail string
	adminHash  []byte
	admin      session.User
	tokens     map[string]int // token -> user id

	wears   map[int]models.Wear
	shop    map[int]models.ShopOrder
	custom  map[int]models.CustomOrder
	nextID  int
	baseURL string
	uploads string

	mail     mailer.Service
	mailFrom string
}

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{}))

	addr := envOr("MOCKAPI_ADDR", "127.0.0.1:8000")
	adminEmail := envOr("MOCKAPI_ADMIN_EMAIL", "admin@julidsfashion.com")
	adminPassword := envOr("MOCKAPI_ADMIN_PASSWORD", "admin123")
	uploads := envOr("UPLOAD_DIR", "./uploads")

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("hash admin password: %v", err)
	}

	var mail mailer.Service = &mailer.Mock{}
	if host := os.Getenv("SMTP_HOST"); host != "" {
		mail = mailer.NewSMTPMailer(mailer.SMTPConfig{
			Host: host,
			Port: envOr("SMTP_PORT", "1025"),
			User: os.Getenv("SMTP_USER"),
			Pass: os.Getenv("SMTP_PASS"),
		})
	}

	s := &store{
		adminEmail: adminEmail,
		adminHash:  hash,
		admin:      session.User{ID: 1, Name: "Juli D", Email: adminEmail, IsStaff: true},
		tokens:     map[string]int{},
		wears:      map[int]models.Wear{},
		shop:       map[int]models.ShopOrder{},
		custom:     map[int]models.CustomOrder{},
		nextID:     1,
		baseURL:    "http://" + addr,
		uploads:    uploads,
		mail:       mail,
		mailFrom:   envOr("MOCKAPI_MAIL_FROM", "no-reply@julidsfashion.com"),
	}
	s.seed()

	r := gin.New()
	r.Use(requestLog(logger), recovery(logger))
	r.Static("/uploads", uploads)

	api := r.Group("/api")
	{
		api.POST("/auth/login/", s.login)

		api.GET("/wears/", s.listWears)
		api.POST("/wears/", s.createWear)
		api.PUT("/wears/:id/", s.updateWear)
		api.DELETE("/wears/:id/", s.deleteWear)

		auth := api.Group("", s.requireBearer)
		{
			auth.GET("/shop-orders/", s.listShopOrders)
			auth.PATCH("/shop-orders/:id/status/", s.patchShopOrderStatus)
			auth.DELETE("/shop-orders/:id/", s.deleteShopOrder)

			auth.GET("/custom-orders/", s.listCustomOrders)
			auth.GET("/custom-orders/:id/", s.getCustomOrder)
			auth.PATCH("/custom-orders/:id/status/", s.patchCustomOrderStatus)
			auth.DELETE("/custom-orders/:id/", s.deleteCustomOrder)
		}

		api.POST("/notifications/shop-order-completed/", s.notifyCompleted(logger, "shop"))
		api.POST("/notifications/custom-order-completed/", s.notifyCompleted(logger, "custom"))
	}

	logger.Info("mockapi listening", "addr", addr, "admin", adminEmail)
	if err := r.Run(addr); err != nil {
		log.Fatalf("mockapi: %v", err)
	}
}

// --- auth ---------------------------------------------------------------

func (s *store) login(c *gin.Context) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid request body."})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !strings.EqualFold(body.Email, s.adminEmail) ||
		bcrypt.CompareHashAndPassword(s.adminHash, []byte(body.Password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "Invalid email or password."})
		return
	}

	token := uuid.NewString()
	s.tokens[token] = s.admin.ID
	c.JSON(http.StatusOK, gin.H{"token": token, "user": s.admin})
}

func (s *store) requireBearer(c *gin.Context) {
	header := c.GetHeader("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Authentication credentials were not provided."})
		return
	}
	s.mu.Lock()
	_, known := s.tokens[token]
	s.mu.Unlock()
	if !known {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Invalid token."})
		return
	}
	c.Next()
}

// --- wears --------------------------------------------------------------

func (s *store) listWears(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Wear, 0, len(s.wears))
	for _, w := range s.wears {
		out = append(out, w)
	}
	sortByID(out, func(w models.Wear) int { return w.ID })
	c.JSON(http.StatusOK, out)
}

func (s *store) createWear(c *gin.Context) {
	w, ok := s.wearFromForm(c, 0)
	if !ok {
		return
	}

	s.mu.Lock()
	w.ID = s.nextID
	s.nextID++
	s.wears[w.ID] = w
	s.mu.Unlock()

	c.JSON(http.StatusCreated, w)
}

func (s *store) updateWear(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	s.mu.Lock()
	existing, found := s.wears[id]
	s.mu.Unlock()
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Wear not found."})
		return
	}

	w, ok := s.wearFromForm(c, id)
	if !ok {
		return
	}
	if w.Image == "" {
		w.Image = existing.Image // no new upload keeps the old image
	}

	s.mu.Lock()
	s.wears[id] = w
	s.mu.Unlock()
	c.JSON(http.StatusOK, w)
}

func (s *store) deleteWear(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	s.mu.Lock()
	_, found := s.wears[id]
	delete(s.wears, id)
	s.mu.Unlock()
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Wear not found."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"detail": "deleted"})
}

func (s *store) wearFromForm(c *gin.Context, id int) (models.Wear, bool) {
	price, err := strconv.ParseFloat(c.PostForm("price"), 64)
	if err != nil || price < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "price must be a non-negative number"})
		return models.Wear{}, false
	}

	w := models.Wear{
		ID:          id,
		WearName:    c.PostForm("wearName"),
		Price:       price,
		Description: c.PostForm("description"),
		Category:    c.PostForm("category"),
	}
	if w.WearName == "" || w.Description == "" || w.Category == "" {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "wearName, description and category are required"})
		return models.Wear{}, false
	}

	if file, err := c.FormFile("image"); err == nil {
		key := slug.FromName(w.WearName) + "-" + uuid.NewString()[:8] + strings.ToLower(filepath.Ext(file.Filename))
		dst := filepath.Join(s.uploads, key)
		if err := c.SaveUploadedFile(file, dst); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to store image"})
			return models.Wear{}, false
		}
		w.Image = s.baseURL + "/uploads/" + key
	}
	return w, true
}

// --- orders -------------------------------------------------------------

func (s *store) listShopOrders(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.ShopOrder, 0, len(s.shop))
	for _, o := range s.shop {
		out = append(out, o)
	}
	sortByID(out, func(o models.ShopOrder) int { return o.ID })
	c.JSON(http.StatusOK, out)
}

func (s *store) patchShopOrderStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	status, ok := statusFromBody(c)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	o, found := s.shop[id]
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Order not found."})
		return
	}
	o.Status = status
	s.shop[id] = o
	c.JSON(http.StatusOK, o)
}

func (s *store) deleteShopOrder(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	s.mu.Lock()
	_, found := s.shop[id]
	delete(s.shop, id)
	s.mu.Unlock()
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Order not found."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"detail": "deleted"})
}

func (s *store) listCustomOrders(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.CustomOrder, 0, len(s.custom))
	for _, o := range s.custom {
		out = append(out, o)
	}
	sortByID(out, func(o models.CustomOrder) int { return o.ID })
	c.JSON(http.StatusOK, out)
}

func (s *store) getCustomOrder(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	s.mu.Lock()
	o, found := s.custom[id]
	s.mu.Unlock()
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Order not found."})
		return
	}
	c.JSON(http.StatusOK, o)
}

func (s *store) patchCustomOrderStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	status, ok := statusFromBody(c)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	o, found := s.custom[id]
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Order not found."})
		return
	}
	o.Status = status
	s.custom[id] = o
	c.JSON(http.StatusOK, o)
}

func (s *store) deleteCustomOrder(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	s.mu.Lock()
	_, found := s.custom[id]
	delete(s.custom, id)
	s.mu.Unlock()
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Order not found."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"detail": "deleted"})
}

func (s *store) notifyCompleted(logger *slog.Logger, kind string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			ID    int    `json:"id"`
			Email string `json:"email"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid request body."})
			return
		}

		var email mailer.Email
		s.mu.Lock()
		switch kind {
		case "shop":
			o, found := s.shop[body.ID]
			s.mu.Unlock()
			if !found {
				c.JSON(http.StatusNotFound, gin.H{"detail": "Order not found."})
				return
			}
			if body.Email != "" {
				o.Email = body.Email
			}
			email = mailer.ShopOrderCompleted(s.mailFrom, o)
		default:
			o, found := s.custom[body.ID]
			s.mu.Unlock()
			if !found {
				c.JSON(http.StatusNotFound, gin.H{"detail": "Order not found."})
				return
			}
			if body.Email != "" {
				o.Email = body.Email
			}
			email = mailer.CustomOrderCompleted(s.mailFrom, o)
		}

		if err := s.mail.Send(c.Request.Context(), email); err != nil {
			logger.Error("completion mail failed", "kind", kind, "order_id", body.ID, "error", err)
			c.JSON(http.StatusBadGateway, gin.H{"detail": "Failed to send notification."})
			return
		}
		logger.Info("completion notification", "kind", kind, "order_id", body.ID, "email", email.To[0])
		c.JSON(http.StatusOK, gin.H{"detail": "sent"})
	}
}

// --- helpers ------------------------------------------------------------

func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid id"})
		return 0, false
	}
	return id, true
}

func statusFromBody(c *gin.Context) (models.Status, bool) {
	var body struct {
		Status models.Status `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || !body.Status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "status must be pending or completed"})
		return "", false
	}
	return body.Status, true
}

func sortByID[T any](items []T, id func(T) int) {
	sort.Slice(items, func(i, j int) bool { return id(items[i]) < id(items[j]) })
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func (s *store) seed() {
	categories := models.Categories()
	for i := 1; i <= 9; i++ {
		s.wears[s.nextID] = models.Wear{
			ID:          s.nextID,
			WearName:    fmt.Sprintf("Ankara Gown %d", i),
			Price:       float64(5000 + i*1500),
			Description: "Hand-finished piece from the studio.",
			Category:    categories[i%len(categories)],
		}
		s.nextID++
	}

	buyers := []struct{ name, email, phone string }{
		{"Chidinma Okafor", "chidinma@example.com", "+2348012345678"},
		{"Tunde Balogun", "tunde@example.com", "+2348098765432"},
		{"Amara Eze", "amara@example.com", "+2347011122233"},
	}
	for i, b := range buyers {
		w := s.wears[i+1]
		qty := i + 1
		s.shop[s.nextID] = models.ShopOrder{
			ID:       s.nextID,
			WearName: w.WearName,
			Price:    w.Price,
			Category: w.Category,
			Quantity: qty,
			Total:    w.Price * float64(qty),
			Status:   models.StatusPending,
			Name:     b.name,
			Email:    b.email,
			Phone:    b.phone,
		}
		s.nextID++

		s.custom[s.nextID] = models.CustomOrder{
			ID:          s.nextID,
			Name:        b.name,
			Email:       b.email,
			Phone:       b.phone,
			Description: "Custom asoebi set for a family event.",
			Image:       s.baseURL + "/uploads/sample.jpg",
			Status:      models.StatusPending,
		}
		s.nextID++
	}
}

package services

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/warungdigital/warung-backend/internal/models"
	"github.com/warungdigital/warung-backend/internal/storage"
	"github.com/warungdigital/warung-backend/internal/utils"
)

// greetingKeywords restart the conversation at the main menu from any step.
var greetingKeywords = map[string]bool{
	"hi":    true,
	"halo":  true,
	"hai":   true,
	"hello": true,
	"menu":  true,
	"mulai": true,
}

// DialogEngine is the ordering state machine. Respond computes the next
// session state and the reply for one message. The engine holds no locks and
// assumes exclusive access to the session it is given; serialization per
// phone number is the session store's job.
type DialogEngine struct {
	store     storage.Store
	finalizer *OrderFinalizer
}

// NewDialogEngine creates a dialog engine with its collaborators injected
func NewDialogEngine(store storage.Store, finalizer *OrderFinalizer) *DialogEngine {
	return &DialogEngine{
		store:     store,
		finalizer: finalizer,
	}
}

// Respond advances the session by one dialog turn and returns the reply.
// A non-nil error means a store failure; on commit failure the session has
// already been reset, and the caller is expected to show a generic apology
// instead of the reply.
func (e *DialogEngine) Respond(session *models.Session, message string) (string, error) {
	raw := strings.TrimSpace(message)
	msg := strings.ToLower(raw)

	// Global restart: menu keywords override whatever step we are in.
	// The draft is deliberately left alone; only a commit resets it.
	if greetingKeywords[msg] {
		session.Step = models.StepMainMenu
		return e.mainMenu(), nil
	}

	switch session.Step {
	case models.StepGreeting, models.StepMainMenu:
		return e.handleMainMenuSelection(session, msg)
	case models.StepAwaitingProduct:
		return e.handleProductSelection(session, msg)
	case models.StepAwaitingQty:
		return e.handleQuantityInput(session, msg)
	case models.StepAwaitingName:
		return e.handleNameInput(session, raw)
	case models.StepAwaitingAddress:
		return e.handleAddressInput(session, raw)
	default:
		session.Step = models.StepMainMenu
		return e.mainMenu(), nil
	}
}

func (e *DialogEngine) handleMainMenuSelection(session *models.Session, msg string) (string, error) {
	switch msg {
	case "1":
		session.Step = models.StepMainMenu
		return e.productCatalog()

	case "2":
		session.Step = models.StepAwaitingProduct
		return `🛒 *PESAN MAKANAN*

Silakan ketik nama produk yang ingin Anda pesan.
Contoh: "nasi gudeg" atau "ayam goreng"

Atau ketik "menu" untuk melihat daftar produk.`, nil

	case "3":
		session.Step = models.StepMainMenu
		return `📋 *STATUS PESANAN*

Untuk mengecek status pesanan, silakan hubungi admin:
📱 WhatsApp: 08123456789
📧 Email: admin@warungdigital.com

Atau ketik "menu" untuk kembali ke menu utama.`, nil

	case "4":
		session.Step = models.StepMainMenu
		return `❓ *BANTUAN*

🕒 Jam Operasional: 08:00 - 22:00 WIB
📱 WhatsApp: 08123456789
📧 Email: support@warungdigital.com
📍 Alamat: Jl. Digital No. 123, Jakarta

*Cara Pemesanan:*
1. Pilih menu "2" untuk pesan
2. Ketik nama produk
3. Masukkan jumlah pesanan
4. Isi data diri dan alamat
5. Tunggu konfirmasi dari tim kami

Ketik "menu" untuk kembali ke menu utama.`, nil

	default:
		// Shortcut ordering: any other text is tried as a product name so
		// "pesan kopi" works straight from the greeting.
		product, err := e.store.FindProductByName(lookupFragment(msg))
		if err != nil {
			return "", err
		}
		if product != nil {
			session.Draft.Product = product
			session.Step = models.StepAwaitingQty
			return e.productFound(product), nil
		}

		catalog, err := e.productCatalog()
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("❌ Pilihan tidak valid atau produk tidak ditemukan.\n\n%s", catalog), nil
	}
}

// lookupFragment strips the "pesan" order keyword so "pesan keripik" looks
// up "keripik" in the catalog.
func lookupFragment(msg string) string {
	return strings.TrimSpace(strings.TrimPrefix(msg, "pesan "))
}

func (e *DialogEngine) handleProductSelection(session *models.Session, msg string) (string, error) {
	product, err := e.store.FindProductByName(lookupFragment(msg))
	if err != nil {
		return "", err
	}

	if product == nil {
		catalog, err := e.productCatalog()
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("❌ Produk \"%s\" tidak ditemukan.\n\n%s", msg, catalog), nil
	}

	session.Draft.Product = product
	session.Step = models.StepAwaitingQty
	return e.productFound(product), nil
}

func (e *DialogEngine) handleQuantityInput(session *models.Session, msg string) (string, error) {
	quantity, err := strconv.Atoi(msg)
	if err != nil {
		return "❌ Silakan masukkan angka yang valid untuk jumlah pesanan.", nil
	}

	if quantity <= 0 {
		return "❌ Jumlah harus lebih dari 0. Silakan masukkan jumlah yang valid.", nil
	}

	product := session.Draft.Product
	if quantity > product.Stock {
		return fmt.Sprintf("❌ Stok tidak mencukupi. Stok tersedia: %d", product.Stock), nil
	}

	session.Draft.Quantity = quantity
	session.Step = models.StepAwaitingName

	total := float64(quantity) * product.Price
	return fmt.Sprintf(`📋 *RINGKASAN PESANAN:*
🍽️ Produk: %s
📊 Jumlah: %d
💰 Harga satuan: %s
💳 Total: %s

Silakan masukkan nama Anda untuk pesanan ini:`,
		product.Name, quantity, utils.FormatRupiah(product.Price), utils.FormatRupiah(total)), nil
}

func (e *DialogEngine) handleNameInput(session *models.Session, raw string) (string, error) {
	if utf8.RuneCountInString(raw) < 2 {
		return "❌ Nama terlalu pendek. Silakan masukkan nama lengkap Anda:", nil
	}

	session.Draft.CustomerName = utils.TitleCaseName(raw)
	session.Step = models.StepAwaitingAddress
	return "📍 Silakan masukkan alamat pengiriman Anda:", nil
}

func (e *DialogEngine) handleAddressInput(session *models.Session, raw string) (string, error) {
	if utf8.RuneCountInString(raw) < 5 {
		return "❌ Alamat terlalu pendek. Silakan masukkan alamat lengkap:", nil
	}

	draft := session.Draft
	order, err := e.finalizer.Commit(draft.CustomerName, session.PhoneNumber, draft.Product, draft.Quantity, raw)
	if err != nil {
		// No dangling half-committed drafts: the session restarts either way.
		session.Reset()
		return "", err
	}

	session.Reset()

	return fmt.Sprintf(`✅ *PESANAN BERHASIL DIBUAT!*

🆔 Nomor Pesanan: #%d
👤 Nama: %s
🍽️ Produk: %s
📊 Jumlah: %d
💳 Total: %s
📍 Alamat: %s

📞 Tim kami akan segera menghubungi Anda untuk konfirmasi pembayaran dan pengiriman.

Terima kasih telah berbelanja di Warung Digital! 🙏

Ketik *menu* untuk kembali ke menu utama.`,
		order.ID, order.CustomerName, order.ProductName, order.Quantity,
		utils.FormatRupiah(order.TotalAmount), order.DeliveryAddress), nil
}

func (e *DialogEngine) productFound(product *models.Product) string {
	return fmt.Sprintf(`✅ Produk ditemukan: *%s*
💰 Harga: %s
📦 Stok tersedia: %d

Berapa jumlah yang ingin Anda pesan?
Ketik angka saja (contoh: 2)`,
		product.Name, utils.FormatRupiah(product.Price), product.Stock)
}

func (e *DialogEngine) mainMenu() string {
	return `🛍️ *Selamat datang di Warung Digital!*

Silakan pilih menu:
1️⃣ Lihat Menu Produk
2️⃣ Pesan Makanan
3️⃣ Status Pesanan
4️⃣ Bantuan

Ketik angka pilihan Anda (1-4) atau ketik nama produk langsung untuk memesan.`
}

func (e *DialogEngine) productCatalog() (string, error) {
	products, err := e.store.GetAllProducts()
	if err != nil {
		return "", err
	}

	if len(products) == 0 {
		return "Maaf, saat ini belum ada produk tersedia.", nil
	}

	var b strings.Builder
	b.WriteString("📋 *MENU PRODUK KAMI:*\n\n")
	for _, product := range products {
		b.WriteString(fmt.Sprintf("🍽️ *%s*\n", product.Name))
		b.WriteString(fmt.Sprintf("💰 Harga: %s\n", utils.FormatRupiah(product.Price)))
		b.WriteString(fmt.Sprintf("📦 Stok: %d\n", product.Stock))
		if product.Description != "" {
			b.WriteString(fmt.Sprintf("📝 %s\n", product.Description))
		}
		b.WriteString(strings.Repeat("─", 30) + "\n\n")
	}
	b.WriteString("💬 Untuk memesan, ketik: *pesan [nama produk]*\nContoh: *pesan nasi gudeg*")

	return b.String(), nil
}

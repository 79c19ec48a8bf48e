package whatsapp

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-BookingAvailability/internal/domain"
	"github.com/m04kA/SMC-BookingAvailability/pkg/ptr"
)

// FormatBookingRequest текст заявки для администратора
// Формат совпадает с сообщением, которое клиент отправляет из виджета
func FormatBookingRequest(b *domain.Booking, service domain.Service) string {
	title := service.Title
	if title == "" {
		title = b.ServiceName
	}

	var sb strings.Builder

	sb.WriteString("🧹 *NOVA SOLICITAÇÃO DE AGENDAMENTO*\n\n")
	fmt.Fprintf(&sb, "📅 *Data:* %s\n", b.Date.Format(domain.HumanDateFormat))
	fmt.Fprintf(&sb, "🏠 *Serviço:* %s\n", title)
	if service.Price != "" {
		fmt.Fprintf(&sb, "💰 *Valor:* %s\n", service.Price)
	}
	if service.Duration != "" {
		fmt.Fprintf(&sb, "⏰ *Duração:* %s\n", service.Duration)
	}

	sb.WriteString("\n")
	fmt.Fprintf(&sb, "👤 *Cliente:* %s\n", b.ClientName)
	if email := ptr.Value(b.ClientEmail); email != "" {
		fmt.Fprintf(&sb, "📧 *E-mail:* %s\n", email)
	}
	fmt.Fprintf(&sb, "📱 *Telefone:* %s\n", b.ClientPhone)
	fmt.Fprintf(&sb, "📍 *Endereço:* %s\n", b.ClientAddress)

	if notes := ptr.Value(b.Notes); notes != "" {
		fmt.Fprintf(&sb, "\n📝 *Observações:* %s\n", notes)
	}

	fmt.Fprintf(&sb, "\n🔢 *ID da Solicitação:* #%s\n\n", b.ShortID())
	sb.WriteString(`⚠️ *IMPORTANTE:* Responda com "ESTA CONFIRMADO" para aprovar este agendamento ou "VOU RECUSAR" para cancelar.`)

	return sb.String()
}

// FormatConfirmation короткое сообщение клиенту о подтверждении
func FormatConfirmation(b *domain.Booking) string {
	return fmt.Sprintf("✅ Agendamento #%s confirmado para %s (%s).",
		b.ShortID(), b.Date.Format(domain.HumanDateFormat), b.ServiceName)
}

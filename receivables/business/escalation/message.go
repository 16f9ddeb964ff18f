package escalation

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/franchise-ops/collections/receivables/model"
)

const invitationSubject = "Convite para reunião com o departamento jurídico"

const invitationText = `Olá, %s.

Identificamos títulos em aberto da sua unidade que foram encaminhados ao departamento jurídico.
Gostaríamos de convidá-lo para uma reunião a fim de buscarmos uma solução antes de qualquer medida judicial.

Agende o melhor horário pelo link: %s

Atenciosamente,
%s`

var invitationHTML = template.Must(template.New("invitation").Parse(`<p>Olá, {{.Name}}.</p>
<p>Identificamos títulos em aberto da sua unidade que foram encaminhados ao departamento jurídico.
Gostaríamos de convidá-lo para uma reunião a fim de buscarmos uma solução antes de qualquer medida judicial.</p>
<p><a href="{{.Link}}">Agendar reunião</a></p>
<p>Atenciosamente,<br>{{.Signature}}</p>
`))

func buildInvitationEmail(unit *model.Unit, config Config) (model.Email, error) {
	var html bytes.Buffer
	err := invitationHTML.Execute(&html, struct {
		Name      string
		Link      string
		Signature string
	}{
		Name:      unit.Name,
		Link:      config.SchedulingLink,
		Signature: config.SenderName,
	})
	if err != nil {
		return model.Email{}, err
	}

	return model.Email{
		To:       unit.Email,
		Subject:  invitationSubject,
		Text:     fmt.Sprintf(invitationText, unit.Name, config.SchedulingLink, config.SenderName),
		HTML:     html.String(),
		From:     config.SenderAddress,
		FromName: config.SenderName,
	}, nil
}

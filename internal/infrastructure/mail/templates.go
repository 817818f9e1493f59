package mail

// Gabarits HTML des deux emails, repris de la charte Astrolabe.
// html/template échappe toutes les valeurs interpolées, y compris les champs
// d'identité saisis par le prospect; seuls les textes passés par formatRichText
// portent du HTML déjà préparé.

const adminAlertHTML = `<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <style>
    body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 800px; margin: 0 auto; padding: 20px; }
    .header { background-color: #29624D; color: white; padding: 20px; border-radius: 8px; margin-bottom: 20px; }
    .section { background-color: #f8f9fa; padding: 15px; margin-bottom: 15px; border-radius: 5px; border-left: 4px solid #67E083; }
    .section-title { color: #29624D; font-weight: bold; font-size: 16px; margin-bottom: 10px; }
    .info-row { display: flex; padding: 8px 0; border-bottom: 1px solid #dee2e6; }
    .info-label { font-weight: bold; min-width: 180px; color: #29624D; }
    .info-value { flex: 1; }
    .chip { display: inline-block; background-color: #e9ecef; padding: 4px 12px; margin: 2px; border-radius: 12px; font-size: 13px; }
    .badge { display: inline-block; padding: 6px 12px; border-radius: 4px; font-weight: bold; background-color: #67E083; color: white; }
    .footer { text-align: center; color: #6c757d; font-size: 12px; margin-top: 30px; padding-top: 20px; border-top: 1px solid #dee2e6; }
  </style>
</head>
<body>
  <div class="header">
    <h1 style="margin: 0;">🎯 Nouveau Prospect Astrolabe</h1>
    <p style="margin: 5px 0 0 0; opacity: 0.9;">Une nouvelle qualification prospect a été soumise</p>
  </div>

  <div class="section">
    <div class="section-title">👤 Identité</div>
    <div class="info-row"><div class="info-label">Nom complet :</div><div class="info-value">{{.Prospect.Identity.FirstName}} {{.Prospect.Identity.LastName}}</div></div>
    <div class="info-row"><div class="info-label">Email :</div><div class="info-value"><a href="mailto:{{.Prospect.Identity.Email}}">{{.Prospect.Identity.Email}}</a></div></div>
    <div class="info-row"><div class="info-label">Téléphone :</div><div class="info-value">{{.Prospect.Identity.Phone}}</div></div>
    <div class="info-row"><div class="info-label">Entreprise :</div><div class="info-value">{{.Prospect.Identity.Company}}</div></div>
    <div class="info-row"><div class="info-label">Poste :</div><div class="info-value">{{.Prospect.Identity.Position}}</div></div>
    <div class="info-row"><div class="info-label">Statut :</div><div class="info-value"><span class="badge">{{.Prospect.Status}}</span></div></div>
  </div>

  <div class="section">
    <div class="section-title">🔧 Écosystème Tech</div>
    <div class="info-row"><div class="info-label">Taille d'équipe :</div><div class="info-value"><span class="chip">{{.Prospect.TechEcosystem.TeamSize}}</span></div></div>
    <div class="info-row"><div class="info-label">Forges :</div><div class="info-value">{{range .Prospect.TechEcosystem.Forges}}<span class="chip">{{.}}</span> {{end}}</div></div>
    <div class="info-row"><div class="info-label">Cloud :</div><div class="info-value">{{range .Prospect.TechEcosystem.Clouds}}<span class="chip">{{.}}</span> {{end}}</div></div>
    <div class="info-row"><div class="info-label">Déploiement :</div><div class="info-value">{{range .Prospect.TechEcosystem.Deployments}}<span class="chip">{{.}}</span> {{end}}</div></div>
    <div class="info-row"><div class="info-label">Gestion de tickets :</div><div class="info-value">{{range .Prospect.TechEcosystem.TicketManagers}}<span class="chip">{{.}}</span> {{end}}</div></div>
    <div class="info-row"><div class="info-label">Monitoring :</div><div class="info-value">{{range .Prospect.TechEcosystem.MonitoringTools}}<span class="chip">{{.}}</span> {{end}}</div></div>
  </div>

  <div class="section">
    <div class="section-title">📊 Diagnostic</div>
    <div class="info-row"><div class="info-label">Niveau de maturité :</div><div class="info-value"><strong>{{.Prospect.Diagnostic.MaturityLevel}}</strong></div></div>
  </div>

  <div class="section">
    <div class="section-title">🎯 Enjeux Prioritaires</div>
    <div class="info-value">{{range .Prospect.Challenges.Priorities}}<span class="chip">{{.}}</span> {{end}}</div>
  </div>

  <div class="footer">
    <p><strong>Date de création :</strong> {{.CreatedAt}}</p>
    <p>Cet email a été généré automatiquement par le système de qualification Astrolabe.</p>
    <p style="color: #29624D; font-weight: bold;">Forge IT - Platform Engineering Excellence</p>
  </div>
</body>
</html>`

const welcomeHTML = `<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <style>
    body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px; background-color: #F1F7F7; }
    .container { background-color: #FFFFFF; border-radius: 12px; overflow: hidden; box-shadow: 0 4px 6px rgba(0,0,0,0.1); }
    .header { background-color: #0A2222; color: white; padding: 40px 30px; text-align: center; }
    .logo { max-width: 200px; height: auto; margin-bottom: 20px; }
    .header h1 { margin: 0; font-size: 28px; font-weight: bold; }
    .content { padding: 40px 30px; }
    .greeting { color: #29624D; font-size: 20px; font-weight: bold; margin-bottom: 20px; }
    .message { color: #333; font-size: 16px; line-height: 1.8; margin-bottom: 20px; }
    .highlight { color: #29624D; font-weight: bold; }
    .challenge-block-constat { background-color: #FFF5F0; border-left: 4px solid #FF8C42; padding: 20px; margin-bottom: 15px; border-radius: 8px; }
    .challenge-block-constat h3 { color: #FF8C42; font-size: 16px; font-weight: bold; margin: 0 0 10px 0; }
    .challenge-block-solution { background-color: #F1F7F7; border-left: 4px solid #29624D; padding: 20px; margin-bottom: 15px; border-radius: 8px; }
    .challenge-block-solution h3 { color: #29624D; font-size: 16px; font-weight: bold; margin: 0 0 10px 0; }
    .challenge-block-next-steps { background-color: #F1F7F7; border-left: 4px solid #67E083; padding: 20px; margin: 30px 0; border-radius: 8px; }
    .challenge-block-next-steps h3 { color: #29624D; font-size: 16px; font-weight: bold; margin: 0 0 10px 0; }
    .cta-box { background-color: #F1F7F7; border-left: 4px solid #67E083; border-radius: 8px; padding: 20px; margin: 30px 0; }
    .cta-box p { margin: 0; color: #29624D; font-size: 15px; }
    .contact { background-color: #F1F7F7; border-radius: 8px; padding: 20px; margin-top: 30px; text-align: center; }
    .contact p { margin: 5px 0; color: #29624D; }
    .contact a { color: #67E083; text-decoration: none; font-weight: bold; }
    .footer { text-align: center; color: #6c757d; font-size: 12px; padding: 20px 30px; border-top: 1px solid #dee2e6; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <img src="{{.LogoURL}}" alt="Forge IT" class="logo" />
      <h1>Bienvenue chez Forge IT</h1>
    </div>

    <div class="content">
      <div class="greeting">
        Bonjour {{.Prospect.Identity.FirstName}} {{.Prospect.Identity.LastName}},
      </div>

      <div class="message">
        Nous vous remercions sincèrement pour votre intérêt envers <span class="highlight">Astrolabe</span>, notre solution de Platform Engineering.
      </div>

      {{if .Challenge}}
      <div class="message">
        Retrouvez ci dessous la solution à votre contexte et vos en-jeux.
      </div>
      <div class="challenge-section">
        {{if .Challenge.Constat}}
        <div class="challenge-block-constat">
          <h3>Le constat</h3>
          <p>{{.Challenge.Constat}}</p>
        </div>
        {{end}}
        {{if .Challenge.Solution}}
        <div class="challenge-block-solution">
          <h3>Ce qu'Astrolabe apporte</h3>
          <p>{{.Challenge.Solution}}</p>
        </div>
        {{end}}
        {{if .Challenge.NextSteps}}
        <div class="challenge-block-next-steps">
          <h3>Prochaines étapes</h3>
          <p>{{.Challenge.NextSteps}}</p>
        </div>
        {{end}}
      </div>
      {{else}}
      <div class="message">
        Votre demande a bien été reçue et nous avons pris connaissance de vos besoins. Notre équipe d'experts va étudier votre profil et reviendra vers vous très prochainement pour enclencher la suite de notre collaboration.
      </div>
      <div class="cta-box">
        <p>💡 <strong>Prochaines étapes :</strong> Un de nos experts Platform Engineering vous contactera sous peu pour échanger sur votre projet et vos enjeux de maturité DevOps.</p>
      </div>
      {{end}}

      <div class="message">
        En attendant, si vous avez des questions ou souhaitez obtenir plus d'informations, n'hésitez pas à nous contacter directement.
      </div>

      <div class="contact">
        <p><strong>Nous contacter :</strong></p>
        <p><a href="mailto:{{.AdminEmail}}">{{.AdminEmail}}</a></p>
      </div>
    </div>

    <div class="footer">
      <p style="color: #29624D; font-weight: bold;">Forge IT - Platform Engineering Excellence</p>
      <p>Cet email a été généré automatiquement suite à votre demande de qualification.</p>
    </div>
  </div>
</body>
</html>`

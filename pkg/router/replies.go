package router

// static reply texts, the product speaks spanish
const (
	msgWelcome = "¡Hola %s! 👋\n\nSoy tu asistente de estudio. Te ayudo a seguir tus roadmaps de aprendizaje y a resolver tus dudas.\n\nComandos disponibles:\n/vincular - Conecta esta cuenta con tu perfil\n/roadmap - Ver tu roadmap activo\n/cambiar [tema] - Cambiar de roadmap\n/listar - Ver todos tus roadmaps\n/progreso - Ver tu progreso\n/ayuda - Ver esta ayuda\n\nTambién puedes escribirme cualquier pregunta sobre tu tema de estudio. 💬"

	msgHelp = "📖 Comandos disponibles:\n\n/vincular - Conecta esta cuenta con tu perfil\n/roadmap - Ver tu roadmap activo\n/cambiar [tema] - Cambiar de roadmap activo\n/listar - Ver todos tus roadmaps\n/progreso - Ver tu progreso\n/ayuda - Ver esta ayuda\n\n💬 Escríbeme cualquier pregunta y te ayudo con tu tema de estudio."

	msgLink = "🔗 Para vincular tu cuenta:\n\n1. Entra a %[2]s/perfil\n2. En la sección de %[3]s, ingresa este código:\n\n%[1]s\n\n3. Guarda los cambios y listo. ✅"

	msgNotLinked = "⚠️ Tu cuenta no está vinculada todavía.\n\nUsa /vincular para conectar esta cuenta con tu perfil y acceder a tus roadmaps."

	msgNoRoadmaps = "📭 Aún no tienes roadmaps.\n\nCrea tu primer roadmap en %s y vuelve por aquí. 🚀"

	msgTopicGone = "🤔 No encontré el roadmap de \"%s\".\n\nUsa /listar para ver tus roadmaps disponibles."

	msgTopicNotFound = "🤔 No encontré ningún roadmap de \"%s\".\n\nUsa /listar para ver tus roadmaps disponibles."

	msgTopicSwitched = "✅ ¡Listo! Tu roadmap activo ahora es: %s\n\nUsa /roadmap para verlo, o pregúntame lo que quieras sobre el tema. 💬"

	msgSwitchUsage = "✏️ Indícame el tema: /cambiar [tema]\n\nPor ejemplo: /cambiar Machine Learning"

	msgProgress = "📈 El seguimiento de progreso estará disponible muy pronto.\n\nMientras tanto puedes revisar tus roadmaps en %s"

	msgThinking = "🤔 Déjame pensar..."

	msgLinkTip = "\n\n💡 Vincula tu cuenta con /vincular para recibir ayuda personalizada sobre tus roadmaps."

	msgApology = "😔 Lo siento, algo salió mal procesando tu mensaje. Inténtalo de nuevo en unos minutos."

	msgListHint       = "\n💬 Usa /cambiar [tema] para cambiar tu roadmap activo."
	msgListHintSwitch = "\n📌 No tienes un roadmap activo. Elige uno con /cambiar [tema]\n"
)

package main

import (
	"database/sql"
	"encoding/json"
	"log"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

// Siembra el contenido inicial de la web de Kinesis: pilares de negocio,
// programas, equipo, tarifas, horarios, FAQs y páginas legales.
// Pensado para ejecutarse una vez sobre una base de datos recién migrada.
func main() {
	godotenv.Load()

	db, err := sql.Open("postgres", os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatalf("❌ No se pudo abrir la conexión: %v", err)
	}
	defer db.Close()

	log.Println("🌱 Sembrando la base de datos...")

	modelIDs := seedBusinessModels(db)
	seedPrograms(db, modelIDs)
	seedInstructors(db)
	seedPricingTiers(db, modelIDs)
	seedScheduleSlots(db)
	seedFaqs(db)
	seedLegalPages(db)
	seedSettings(db)

	log.Println("🎉 Siembra completada")
}

func mustJSON(items []string) string {
	b, err := json.Marshal(items)
	if err != nil {
		log.Fatalf("❌ JSON inválido: %v", err)
	}
	return string(b)
}

type businessModelSeed struct {
	slug, name, tagline, description string
	features, advantages, benefits   []string
	imageURL, iconName               string
	order                            int
}

func seedBusinessModels(db *sql.DB) map[string]string {
	log.Println("📦 Pilares de negocio...")

	seeds := []businessModelSeed{
		{
			slug:        "elite-on-demand",
			name:        "Élite On Demand",
			tagline:     "Tecnificación a tu medida",
			description: "Clases privadas o semi-privadas diseñadas para bailarines que buscan perfeccionar su técnica con profesionales de élite. Máxima flexibilidad: reserva cuando lo necesites.",
			features: []string{
				"Clases 100% personalizadas",
				"Profesores especializados de élite",
				"Horario flexible (L-V, 10-13h)",
				"Válido para parejas de baile",
				"Sin compromisos de permanencia",
			},
			advantages: []string{
				"Progreso técnico acelerado",
				"Feedback personalizado inmediato",
				"Preparación para audiciones",
				"Corrección de vicios técnicos",
			},
			benefits: []string{
				"Alcanza tu máximo potencial como bailarín",
				"Confianza y seguridad escénica",
				"Resultados visibles en pocas sesiones",
			},
			imageURL: "/assets/elite_private_coaching_session.png",
			iconName: "Sparkles",
			order:    1,
		},
		{
			slug:        "ritmo-constante",
			name:        "Ritmo Constante",
			tagline:     "Constancia que transforma",
			description: "Suscripciones mensuales a clases grupales regulares. La constancia es clave para el progreso. Encuentra tu estilo, crece con tu grupo y convierte la danza en tu rutina semanal.",
			features: []string{
				"Clases grupales regulares",
				"2 o 4 horas semanales",
				"Niveles diferenciados (PRO/Amateur)",
				"Grupo estable, progreso colectivo",
				"Matrícula anual de 30€",
			},
			advantages: []string{
				"Comunidad de aprendizaje",
				"Compromiso de largo plazo",
				"Evolución técnica progresiva",
				"Flexibilidad en estilos (Clásico, Contemporáneo, Folclore...)",
			},
			benefits: []string{
				"Convierte la danza en tu estilo de vida",
				"Red social alrededor de la danza",
				"Alcanza objetivos sostenidos",
			},
			imageURL: "/assets/group_dance_class_energy.png",
			iconName: "TrendingUp",
			order:    2,
		},
		{
			slug:        "generacion-dance",
			name:        "Generación Dance",
			tagline:     "La cantera del futuro",
			description: "Programas infantiles y juveniles enfocados en formación técnica y diversión. La combinación perfecta para desarrollar habilidades motoras, creatividad y disciplina desde edades tempranas.",
			features: []string{
				"Clases extraescolares (conciliación familiar)",
				"Ballet, Jazz, Hip Hop, Zumba Kids",
				"Grupos por edades (5-8, 9-12, 13-17)",
				"Preparación para exámenes y certámenes",
				"Shows y actuaciones escolares",
			},
			advantages: []string{
				"Desarrollo integral del niño/adolescente",
				"Fomenta disciplina y trabajo en equipo",
				"Ambiente seguro y lúdico",
				"Opción de federarse (deportivo)",
			},
			benefits: []string{
				"Forma la próxima generación de bailarines",
				"Potencia la autoestima y expresión",
				"Conciliación familiar",
			},
			imageURL: "/assets/children's_dance_class_joy.png",
			iconName: "Heart",
			order:    3,
		},
		{
			slug:        "si-quiero-bailar",
			name:        "Sí, Quiero Bailar",
			tagline:     "Tu momento WOW",
			description: "Coreografía personalizada para bodas y eventos especiales. Desde el vals nupcial hasta sorpresas grupales con amigos. Haz brillar tu momento especial con una coreografía única.",
			features: []string{
				"Vals nupcial personalizado",
				"Sorpresas coreográficas (flash mob, baile de amigos)",
				"Profesores especializados en eventos",
				"Clases privadas o grupales",
				"Ensayos flexibles según tu agenda",
			},
			advantages: []string{
				"Momento único e inolvidable",
				"Personalizado a tu estilo y canción",
				"Profesionalidad y discreción",
				"Estrés zero, solo diversión",
			},
			benefits: []string{
				"Memorias que duran para siempre",
				"Confianza para brillar en el gran día",
				"Sorprende a tu pareja e invitados",
			},
			imageURL: "/assets/wedding_couple_first_dance.png",
			iconName: "Users",
			order:    4,
		},
	}

	ids := make(map[string]string, len(seeds))
	for _, s := range seeds {
		var id string
		err := db.QueryRow(`
			INSERT INTO business_models (slug, name, tagline, description, features, advantages,
				benefits, image_url, icon_name, sort_order, published)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, TRUE)
			RETURNING id`,
			s.slug, s.name, s.tagline, s.description,
			mustJSON(s.features), mustJSON(s.advantages), mustJSON(s.benefits),
			s.imageURL, s.iconName, s.order,
		).Scan(&id)
		if err != nil {
			log.Fatalf("❌ Error sembrando pilar %s: %v", s.slug, err)
		}
		ids[s.slug] = id
	}

	log.Printf("✅ %d pilares creados", len(ids))
	return ids
}

func seedPrograms(db *sql.DB, modelIDs map[string]string) {
	log.Println("📚 Programas...")

	ritmo := modelIDs["ritmo-constante"]
	generacion := modelIDs["generacion-dance"]

	programs := []struct {
		slug, name, description, level, ageGroup string
		weeklyHours                              int
		modelID, imageURL                        string
	}{
		{"ballet-clasico-pro", "Ballet Clásico Profesional",
			"Formación rigurosa en técnica clásica para bailarines avanzados. Incluye barra, centro, diagonal y variaciones.",
			"professional", "adult", 4, ritmo, "/assets/generated_images/ballet_dancer_graceful_pose.png"},
		{"contemporaneo-avanzado", "Contemporáneo Avanzado",
			"Exploración del movimiento contemporáneo con énfasis en técnicas de release, floor work y composición coreográfica.",
			"advanced", "adult", 4, ritmo, "/assets/generated_images/ballet_dancer_graceful_pose.png"},
		{"street-flow", "Street Flow (Hip Hop y Urbano)",
			"Hip Hop, Popping, Locking y estilos urbanos actuales. Para todos los niveles, desde iniciación hasta avanzado.",
			"beginner", "all_ages", 2, ritmo, "/assets/generated_images/hip_hop_dancer_street_style.png"},
		{"ballet-infantil-5-8", "Ballet Infantil (5-8 años)",
			"Introducción lúdica al ballet para los más pequeños. Desarrollo de coordinación, postura y expresión.",
			"beginner", "children", 2, generacion, "/assets/generated_images/children's_dance_class_joy.png"},
		{"hip-hop-kids-9-12", "Hip Hop Kids (9-12 años)",
			"Energía, actitud y diversión. Hip Hop adaptado a niños de primaria con coreografías actuales.",
			"beginner", "children", 2, generacion, "/assets/generated_images/hip_hop_dancer_street_style.png"},
		{"raices-vivas-folclore", "Raíces Vivas (Folclore)",
			"Sevillanas, Muñeira, Fandango y otras danzas tradicionales. Recuperación y celebración de nuestras raíces.",
			"beginner", "adult", 2, ritmo, "/assets/generated_images/ballet_dancer_graceful_pose.png"},
		{"jota-aragonesa", "Jota Aragonesa",
			"Jota de competición y tradicional. Impartida por maestros galardonados del Certamen Oficial de Jota.",
			"intermediate", "all_ages", 2, ritmo, "/assets/generated_images/ballet_dancer_graceful_pose.png"},
	}

	for _, p := range programs {
		_, err := db.Exec(`
			INSERT INTO programs (business_model_id, slug, name, description, level, age_group,
				weekly_hours, image_url, published)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, TRUE)`,
			p.modelID, p.slug, p.name, p.description, p.level, p.ageGroup, p.weeklyHours, p.imageURL,
		)
		if err != nil {
			log.Fatalf("❌ Error sembrando programa %s: %v", p.slug, err)
		}
	}

	log.Printf("✅ %d programas creados", len(programs))
}

func seedInstructors(db *sql.DB) {
	log.Println("👥 Equipo docente...")

	instructors := []struct {
		name, role, quote, bio, photoURL string
		featured                         bool
		order                            int
	}{
		{"Elena Herrero", "Directora Artística y Profesora de Clásico",
			"La técnica es la base, pero la pasión es el alma.",
			"Bailarina profesional formada en la RCPD de Madrid. Solista del Ballet Nacional durante 15 años. Profesora de Ballet Clásico en Kinesis, especializada en técnica de puntas y variaciones.",
			"/assets/generated_images/female_instructor_professional_portrait.png", true, 1},
		{"Pablo Rivas", "Profesor de Contemporáneo",
			"El movimiento es un lenguaje. Yo te enseño a hablarlo con fluidez.",
			"Bailarín contemporáneo formado en Amsterdam y Londres. Ha trabajado con compañías de prestigio internacional. Experto en técnicas Cunningham, Release y Floor Work.",
			"/assets/generated_images/male_instructor_contemporary_portrait.png", true, 2},
		{"Diego Montes", "Profesor de Hip Hop y Urbano",
			"El Hip Hop es actitud, es cultura, es libertad. Ven y descúbrela.",
			"B-boy con más de 20 años de experiencia en la escena urbana. Campeón regional de Breaking. Especialista en Popping, Locking y House.",
			"/assets/generated_images/male_instructor_contemporary_portrait.png", false, 3},
		{"Lucía Sanz", "Instructora de Extraescolares",
			"Los niños son pura energía y creatividad. Mi misión es canalizarla.",
			"Especialista en pedagogía infantil aplicada a la danza. Monitora de Zumba Kids certificada. Responsable de todos los programas de Generación Dance.",
			"/assets/generated_images/female_instructor_professional_portrait.png", false, 4},
	}

	for _, i := range instructors {
		_, err := db.Exec(`
			INSERT INTO instructors (name, role, quote, bio, photo_url, featured, sort_order, published)
			VALUES ($1, $2, $3, $4, $5, $6, $7, TRUE)`,
			i.name, i.role, i.quote, i.bio, i.photoURL, i.featured, i.order,
		)
		if err != nil {
			log.Fatalf("❌ Error sembrando instructor %s: %v", i.name, err)
		}
	}

	log.Printf("✅ %d instructores creados", len(instructors))
}

func seedPricingTiers(db *sql.DB, modelIDs map[string]string) {
	log.Println("💰 Tarifas...")

	tiers := []struct {
		modelSlug, name string
		priceAmount     int
		billingPeriod   string
		features        []string
		highlighted     bool
		order           int
	}{
		{"elite-on-demand", "Sesión Única", 45, "sesión",
			[]string{"1 hora de clase privada", "Feedback personalizado", "Sin compromiso"}, false, 1},
		{"elite-on-demand", "Bono 5 Sesiones", 200, "bono",
			[]string{"5 horas de clases", "Ahorro de 25€", "Válido 3 meses"}, true, 2},
		{"elite-on-demand", "Bono 10 Sesiones", 380, "bono",
			[]string{"10 horas de clases", "Ahorro de 70€", "Válido 6 meses"}, false, 3},
		{"ritmo-constante", "Suscripción PRO", 95, "mes",
			[]string{"4 horas/semana", "Clásico + Contemporáneo", "Matrícula 30€/año"}, true, 1},
		{"ritmo-constante", "Suscripción Amateur", 65, "mes",
			[]string{"2 horas/semana", "Folclore, Urbano o Salón", "Matrícula 30€/año"}, false, 2},
		{"generacion-dance", "Mensualidad Infantil", 45, "mes",
			[]string{"2 horas/semana", "1 disciplina a elegir", "Matrícula 25€/año"}, false, 1},
		{"si-quiero-bailar", "Pack Vals Nupcial", 250, "pack",
			[]string{"5 sesiones privadas", "Coreografía personalizada", "Ensayo final en sala"}, true, 1},
	}

	for _, t := range tiers {
		_, err := db.Exec(`
			INSERT INTO pricing_tiers (business_model_id, name, price_amount, billing_period,
				features, highlighted, sort_order, published)
			VALUES ($1, $2, $3, $4, $5, $6, $7, TRUE)`,
			modelIDs[t.modelSlug], t.name, t.priceAmount, t.billingPeriod,
			mustJSON(t.features), t.highlighted, t.order,
		)
		if err != nil {
			log.Fatalf("❌ Error sembrando tarifa %s: %v", t.name, err)
		}
	}

	log.Printf("✅ %d tarifas creadas", len(tiers))
}

func seedScheduleSlots(db *sql.DB) {
	log.Println("📅 Horario semanal...")

	slots := []struct {
		day, start, end, room string
	}{
		{"monday", "17:00", "18:00", "Sala A"},
		{"monday", "18:00", "19:00", "Sala A"},
		{"monday", "19:00", "20:00", "Sala A"},
		{"monday", "20:00", "21:00", "Sala A"},
		{"tuesday", "17:00", "18:00", "Sala A"},
		{"tuesday", "19:00", "20:00", "Sala A"},
		{"tuesday", "20:00", "21:00", "Sala A"},
		{"wednesday", "10:00", "13:00", "Todas"},
		{"wednesday", "19:00", "20:00", "Sala A"},
		{"wednesday", "20:00", "21:00", "Sala A"},
		{"thursday", "17:00", "18:00", "Sala A"},
		{"thursday", "19:00", "20:00", "Sala A"},
		{"thursday", "20:00", "21:00", "Sala A"},
		{"friday", "10:00", "13:00", "Todas"},
		{"friday", "19:00", "20:00", "Sala A"},
		{"friday", "20:00", "21:00", "Sala A"},
	}

	for _, s := range slots {
		_, err := db.Exec(`
			INSERT INTO schedule_slots (day_of_week, start_time, end_time, room, published)
			VALUES ($1, $2, $3, $4, TRUE)`,
			s.day, s.start, s.end, s.room,
		)
		if err != nil {
			log.Fatalf("❌ Error sembrando horario %s %s: %v", s.day, s.start, err)
		}
	}

	log.Printf("✅ %d bloques de horario creados", len(slots))
}

func seedFaqs(db *sql.DB) {
	log.Println("❓ Preguntas frecuentes...")

	faqs := []struct {
		category, question, answer string
		order                      int
	}{
		{"general", "¿Necesito experiencia previa para apuntarme?",
			"Depende del programa. Tenemos opciones para todos los niveles: desde principiantes absolutos (Generación Dance, Street Flow, Raíces Vivas) hasta bailarines profesionales (Élite On Demand, Ritmo Constante PRO). En cada programa indicamos el nivel recomendado.", 1},
		{"general", "¿Cuánto cuesta la matrícula?",
			"La matrícula anual es de 30€ para adultos (Ritmo Constante) y 25€ para niños (Generación Dance). Élite On Demand y Sí Quiero Bailar no requieren matrícula, solo pagas por las sesiones que contratas.", 2},
		{"elite", "¿Cómo reservo una sesión de Élite On Demand?",
			"Contacta con nosotros a través del formulario de reserva, llama al teléfono de la escuela, o escribe a nuestro email. Te asignaremos el profesor más adecuado según tu disciplina y coordinaremos horarios según tu disponibilidad.", 3},
		{"ritmo_constante", "¿Puedo cambiar de programa dentro de Ritmo Constante?",
			"Sí, puedes cambiar de programa al finalizar cada mes. Simplemente avísanos con antelación y te reubicaremos en el grupo que prefieras (si hay plazas disponibles).", 4},
		{"generacion", "¿Los niños necesitan ropa especial?",
			"Para las primeras clases, ropa cómoda y deportiva es suficiente (mallas, camiseta, zapatillas limpias). Una vez el niño decida continuar, te indicaremos el vestuario específico de cada disciplina (zapatillas de ballet, ropa de hip hop, etc.).", 5},
	}

	for _, f := range faqs {
		_, err := db.Exec(`
			INSERT INTO faqs (category, question, answer, sort_order, published)
			VALUES ($1, $2, $3, $4, TRUE)`,
			f.category, f.question, f.answer, f.order,
		)
		if err != nil {
			log.Fatalf("❌ Error sembrando FAQ %q: %v", f.question, err)
		}
	}

	log.Printf("✅ %d FAQs creadas", len(faqs))
}

func seedLegalPages(db *sql.DB) {
	log.Println("📄 Páginas legales...")

	pages := []struct {
		slug, title, content string
	}{
		{"privacidad", "Política de Privacidad", `
			<h2>1. Información General</h2>
			<p>En Kinesis, nos comprometemos a proteger la privacidad de nuestros usuarios. Esta política describe cómo recopilamos, usamos y protegemos su información personal.</p>

			<h2>2. Datos que Recopilamos</h2>
			<p>Recopilamos información que usted nos proporciona directamente, como:</p>
			<ul>
				<li>Nombre y apellidos</li>
				<li>Dirección de correo electrónico</li>
				<li>Número de teléfono</li>
				<li>Información de inscripción a programas</li>
			</ul>

			<h2>3. Uso de la Información</h2>
			<p>Utilizamos su información para:</p>
			<ul>
				<li>Gestionar su inscripción en nuestros programas</li>
				<li>Comunicarnos con usted sobre clases y eventos</li>
				<li>Mejorar nuestros servicios</li>
				<li>Cumplir con obligaciones legales</li>
			</ul>

			<h2>4. Protección de Datos</h2>
			<p>Implementamos medidas de seguridad técnicas y organizativas para proteger sus datos personales contra acceso no autorizado, pérdida o alteración.</p>

			<h2>5. Sus Derechos</h2>
			<p>Tiene derecho a acceder, rectificar, cancelar y oponerse al tratamiento de sus datos personales. Para ejercer estos derechos, contáctenos en info@kinesis.com.</p>

			<h2>6. Contacto</h2>
			<p>Para cualquier consulta sobre esta política de privacidad, puede contactarnos en info@kinesis.com o en nuestra dirección: Calle Ejemplo, 123, 50001 Zaragoza.</p>
		`},
		{"cookies", "Política de Cookies", `
			<h2>1. ¿Qué son las Cookies?</h2>
			<p>Las cookies son pequeños archivos de texto que se almacenan en su dispositivo cuando visita nuestro sitio web. Nos ayudan a mejorar su experiencia de navegación.</p>

			<h2>2. Tipos de Cookies que Utilizamos</h2>
			<h3>Cookies Esenciales</h3>
			<p>Necesarias para el funcionamiento básico del sitio web. No se pueden desactivar.</p>

			<h3>Cookies de Rendimiento</h3>
			<p>Nos ayudan a entender cómo los visitantes interactúan con nuestro sitio web.</p>

			<h3>Cookies de Funcionalidad</h3>
			<p>Permiten que el sitio web recuerde sus preferencias (como idioma o región).</p>

			<h2>3. Gestión de Cookies</h2>
			<p>Puede controlar y/o eliminar las cookies según desee. Puede eliminar todas las cookies que ya están en su dispositivo y configurar la mayoría de los navegadores para evitar que se instalen.</p>

			<h2>4. Más Información</h2>
			<p>Para más información sobre cómo gestionamos las cookies, contáctenos en info@kinesis.com.</p>
		`},
		{"terminos", "Términos y Condiciones", `
			<h2>1. Aceptación de los Términos</h2>
			<p>Al acceder y utilizar este sitio web, acepta estar sujeto a estos términos y condiciones de uso.</p>

			<h2>2. Servicios Ofrecidos</h2>
			<p>Kinesis ofrece clases de danza y servicios relacionados según los diferentes modelos de negocio descritos en nuestro sitio web.</p>

			<h2>3. Inscripción y Pago</h2>
			<p>La inscripción en nuestros programas requiere el pago de una matrícula anual (según corresponda) y las cuotas mensuales correspondientes. Los pagos deben realizarse según las condiciones especificadas para cada programa.</p>

			<h2>4. Cancelaciones y Reembolsos</h2>
			<p>Las cancelaciones deben notificarse con al menos 7 días de antelación. Las matrículas no son reembolsables. Las cuotas mensuales pueden ser reembolsadas parcialmente según las condiciones específicas de cada programa.</p>

			<h2>5. Código de Conducta</h2>
			<p>Los participantes deben mantener un comportamiento respetuoso hacia instructores, personal y otros estudiantes. Nos reservamos el derecho de expulsar a cualquier persona que no cumpla con nuestro código de conducta.</p>

			<h2>6. Responsabilidad</h2>
			<p>Los participantes asisten a las clases bajo su propia responsabilidad. Kinesis no se hace responsable de lesiones que puedan ocurrir durante las clases, salvo en casos de negligencia demostrable.</p>

			<h2>7. Modificaciones</h2>
			<p>Nos reservamos el derecho de modificar estos términos y condiciones en cualquier momento. Las modificaciones entrarán en vigor inmediatamente después de su publicación en el sitio web.</p>

			<h2>8. Contacto</h2>
			<p>Para cualquier consulta sobre estos términos, contáctenos en info@kinesis.com.</p>
		`},
	}

	for _, p := range pages {
		_, err := db.Exec(`
			INSERT INTO legal_pages (slug, title, content, published)
			VALUES ($1, $2, $3, TRUE)`,
			p.slug, p.title, p.content,
		)
		if err != nil {
			log.Fatalf("❌ Error sembrando página legal %s: %v", p.slug, err)
		}
	}

	log.Printf("✅ %d páginas legales creadas", len(pages))
}

func seedSettings(db *sql.DB) {
	log.Println("⚙️ Configuración del sitio...")

	settings := map[string]string{
		"business_name": "Kinesis Academia de Danza",
		"address":       "Calle Ejemplo, 123, 50001 Zaragoza",
		"phone":         "+34 976 000 000",
		"email":         "info@kinesis.com",
		"instagram":     "https://instagram.com/kinesiszgz",
	}

	for key, value := range settings {
		_, err := db.Exec(`
			INSERT INTO site_settings (key, value)
			VALUES ($1, $2)
			ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`,
			key, value,
		)
		if err != nil {
			log.Fatalf("❌ Error sembrando ajuste %s: %v", key, err)
		}
	}

	log.Printf("✅ %d ajustes creados", len(settings))
}

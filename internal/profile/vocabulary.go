package profile

// techVocabulary is the fixed list of technology names mined from
// free-text experience and project descriptions. Matching is a
// case-insensitive substring test; the canonical casing below is what
// gets added to the profile.
var techVocabulary = []string{
	"JavaScript",
	"TypeScript",
	"Python",
	"Java",
	"Go",
	"Golang",
	"C++",
	"C#",
	"Ruby",
	"PHP",
	"Swift",
	"Kotlin",
	"Rust",
	"Scala",
	"React",
	"Angular",
	"Vue",
	"Svelte",
	"Next.js",
	"Node.js",
	"Express",
	"Django",
	"Flask",
	"FastAPI",
	"Spring",
	"Rails",
	"Laravel",
	".NET",
	"GraphQL",
	"REST",
	"gRPC",
	"SQL",
	"MySQL",
	"PostgreSQL",
	"MongoDB",
	"Redis",
	"Elasticsearch",
	"Cassandra",
	"SQLite",
	"Kafka",
	"RabbitMQ",
	"Docker",
	"Kubernetes",
	"Terraform",
	"Ansible",
	"Jenkins",
	"Git",
	"AWS",
	"Azure",
	"GCP",
	"Linux",
	"HTML",
	"CSS",
	"Sass",
	"Tailwind",
	"Redux",
	"Webpack",
	"TensorFlow",
	"PyTorch",
	"Pandas",
	"NumPy",
	"Spark",
	"Hadoop",
	"Airflow",

	// Spoken languages commonly listed on resumes
	"English",
	"Spanish",
	"French",
	"German",
	"Hindi",
	"Mandarin",
	"Arabic",
	"Portuguese",
	"Russian",
	"Japanese",
}

// spokenLanguages marks vocabulary entries that belong in the language
// container rather than the technical one
var spokenLanguages = map[string]bool{
	"English":    true,
	"Spanish":    true,
	"French":     true,
	"German":     true,
	"Hindi":      true,
	"Mandarin":   true,
	"Arabic":     true,
	"Portuguese": true,
	"Russian":    true,
	"Japanese":   true,
}

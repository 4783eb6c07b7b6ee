package news

import (
	"math/rand/v2"
	"net/url"
)

// TechImages is the fallback image pool used when an article has no image
// or its image fails to load.
var TechImages = []string{
	"https://images.unsplash.com/photo-1518770660439-4636190af475?auto=format&fit=crop&w=800&q=80",
	"https://images.unsplash.com/photo-1550751827-4bd374c3f58b?auto=format&fit=crop&w=800&q=80",
	"https://images.unsplash.com/photo-1526374965328-7f61d4dc18c5?auto=format&fit=crop&w=800&q=80",
	"https://images.unsplash.com/photo-1550009158-9ebf690569ba?auto=format&fit=crop&w=800&q=80",
	"https://images.unsplash.com/photo-1620712943543-bcc4688e7485?auto=format&fit=crop&w=800&q=80",
	"https://images.unsplash.com/photo-1531297461136-82lw8e076336?auto=format&fit=crop&w=800&q=80",
	"https://images.unsplash.com/photo-1485827404703-89b55fcc595e?auto=format&fit=crop&w=800&q=80",
	"https://images.unsplash.com/photo-1593642632823-8f78536788c6?auto=format&fit=crop&w=800&q=80",
	"https://images.unsplash.com/photo-1555664424-778a1e5e1b48?auto=format&fit=crop&w=800&q=80",
	"https://images.unsplash.com/photo-1563770095-39d46e8e71e3?auto=format&fit=crop&w=800&q=80",
	"https://images.unsplash.com/photo-1523961131990-5ea7c61b2107?auto=format&fit=crop&w=800&q=80",
	"https://images.unsplash.com/photo-1451187580459-43490279c0fa?auto=format&fit=crop&w=800&q=80",
	"https://images.unsplash.com/photo-1519389950473-47ba0277781c?auto=format&fit=crop&w=800&q=80",
	"https://images.unsplash.com/photo-1558346490-a72e53ae2d4f?auto=format&fit=crop&w=800&q=80",
	"https://images.unsplash.com/photo-1535378437321-6f8af2311931?auto=format&fit=crop&w=800&q=80",
	"https://images.unsplash.com/photo-1581091226825-a6a2a5aee158?auto=format&fit=crop&w=800&q=80",
	"https://images.unsplash.com/photo-1591453089816-0fbb971b454c?auto=format&fit=crop&w=800&q=80",
	"https://images.unsplash.com/photo-1516110833967-0b5716ca1387?auto=format&fit=crop&w=800&q=80",
	"https://images.unsplash.com/photo-1525547719571-a2d4ac8945e2?auto=format&fit=crop&w=800&q=80",
	"https://images.unsplash.com/photo-1480506132288-68f7705954bd?auto=format&fit=crop&w=800&q=80",
	"https://images.unsplash.com/photo-1461749280684-dccba630e2f6?auto=format&fit=crop&w=800&q=80",
	"https://images.unsplash.com/photo-1504639725590-34d0984388bd?auto=format&fit=crop&w=800&q=80",
	"https://images.unsplash.com/photo-1517433456452-f9633a875f6f?auto=format&fit=crop&w=800&q=80",
	"https://images.unsplash.com/photo-1550745165-9bc0b252726f?auto=format&fit=crop&w=800&q=80",
	"https://images.unsplash.com/photo-1562813733-b31f71025d54?auto=format&fit=crop&w=800&q=80",
	"https://images.unsplash.com/photo-1614728853913-1e32005e3192?auto=format&fit=crop&w=800&q=80",
	"https://images.unsplash.com/photo-1618005182384-a83a8bd57fbe?auto=format&fit=crop&w=800&q=80",
	"https://images.unsplash.com/photo-1614064641938-3bbee52942c7?auto=format&fit=crop&w=800&q=80",
	"https://images.unsplash.com/photo-1573164713714-d95e436ab8d6?auto=format&fit=crop&w=800&q=80",
}

// RandomImage picks an image from the pool.
func RandomImage() string {
	return TechImages[rand.IntN(len(TechImages))]
}

// ResolveImage returns the article image, or a pool image when the article
// has none or its image is known to be broken.
func ResolveImage(a Article, broken bool) string {
	if a.ImageURL == "" || broken {
		return RandomImage()
	}
	return a.ImageURL
}

// SearchURL builds the web search link used when a story has no direct URL.
func SearchURL(title, source string) string {
	return "https://www.google.com/search?q=" + url.QueryEscape(title+" "+source)
}

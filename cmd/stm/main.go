package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

func main() {
	baseURL := flag.String("server", envOr("STM_SERVER_URL", "http://127.0.0.1:8571"), "URL du serveur (ex: http://127.0.0.1:8571)")
	timeout := flag.Duration("timeout", 10*time.Second, "Timeout HTTP")
	duration := flag.String("duration", "any", "Classe de durée pour play (any|short|long)")
	seconds := flag.Int("seconds", 0, "Secondes pour rewind/forward (défaut serveur: 10)")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}

	client := &http.Client{Timeout: *timeout}
	api := strings.TrimRight(*baseURL, "/") + "/api/v1"

	switch args[0] {
	case "health":
		get(client, api+"/health")
	case "version":
		get(client, api+"/version")
	case "status":
		get(client, api+"/intents/status")
	case "play":
		if len(args) < 2 {
			usage()
			os.Exit(2)
		}
		topic := strings.Join(args[1:], " ")
		body := map[string]string{"duration": *duration}
		if strings.HasPrefix(topic, "http://") || strings.HasPrefix(topic, "https://") {
			body["url"] = topic
		} else {
			body["topic"] = topic
		}
		post(client, api+"/intents/play", body)
	case "channel":
		if len(args) < 2 {
			usage()
			os.Exit(2)
		}
		post(client, api+"/intents/play", map[string]string{"channel": strings.Join(args[1:], " ")})
	case "pause", "resume", "restart":
		post(client, api+"/intents/control", map[string]any{"action": args[0]})
	case "rewind", "forward":
		post(client, api+"/intents/control", map[string]any{"action": args[0], "seconds": *seconds})
	case "stop":
		post(client, api+"/intents/stop", nil)
	default:
		fmt.Fprintln(os.Stderr, "Commande inconnue:", args[0])
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: stm [commande]

Commandes:
  play <sujet|url>   cherche et lance une vidéo (ou une URL directe)
  channel <chaîne>   lance une vidéo récente d'une chaîne
  pause | resume     pause / reprise
  rewind | forward   recule / avance (-seconds)
  restart            reprend depuis le début
  stop               arrête la lecture
  status             état de lecture du mirror
  health | version   état du serveur`)
}

func get(client *http.Client, url string) {
	resp, err := client.Get(url)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Erreur:", err)
		os.Exit(1)
	}
	render(resp)
}

func post(client *http.Client, url string, payload any) {
	var reader io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Erreur:", err)
			os.Exit(1)
		}
		reader = bytes.NewReader(b)
	}
	resp, err := client.Post(url, "application/json", reader)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Erreur:", err)
		os.Exit(1)
	}
	render(resp)
}

func render(resp *http.Response) {
	defer resp.Body.Close()

	b, _ := io.ReadAll(resp.Body)
	var pretty any
	if err := json.Unmarshal(b, &pretty); err == nil {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(pretty)
		if resp.StatusCode >= 400 {
			os.Exit(1)
		}
		return
	}

	os.Stdout.Write(b)
	os.Stdout.Write([]byte("\n"))
	if resp.StatusCode >= 400 {
		os.Exit(1)
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

package dashboard

import (
	"html/template"
	"net/url"

	"github.com/openexhibits/exhibits-admin/internal/records"
)

// formPage feeds the add/edit form templates. Values repopulates the
// inputs whether they come from a fetched record or a rejected submit.
// ExhibitID is set on the item pages that carry the media upload form.
type formPage struct {
	Action    string
	ExhibitID string
	IsNew     bool
	Values    url.Values
}

// exhibitsPage feeds the exhibit list template.
type exhibitsPage struct {
	Exhibits []records.Exhibit
}

func parseTemplates() *template.Template {
	return template.Must(template.New("dashboard").Parse(pageTemplates))
}

// pageTemplates holds every dashboard page. The header renders the shared
// #message banner that all handlers write status into.
const pageTemplates = `
{{define "header"}}<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}} — Exhibits Admin</title>
  <style>
    body { font-family: system-ui, sans-serif; margin: 0; background: #f8f9fa; color: #212529; }
    header.top { background: #343a40; color: #fff; padding: 0.75rem 1.5rem; display: flex; justify-content: space-between; }
    header.top a { color: #fff; text-decoration: none; margin-left: 1rem; }
    main { max-width: 860px; margin: 1.5rem auto; padding: 0 1rem; }
    #message { padding: 0.75rem 1rem; border-radius: 4px; margin-bottom: 1rem; }
    #message.error { background: #f8d7da; color: #842029; }
    #message.success { background: #d1e7dd; color: #0f5132; }
    form.record label { display: block; margin-top: 0.75rem; font-weight: 600; }
    form.record input[type=text], form.record input[type=number], form.record textarea, form.record select {
      width: 100%; padding: 0.4rem; border: 1px solid #ced4da; border-radius: 4px; }
    fieldset { margin-top: 1rem; border: 1px solid #dee2e6; border-radius: 4px; }
    button { margin-top: 1rem; padding: 0.5rem 1.25rem; background: #228be6; color: #fff; border: 0; border-radius: 4px; cursor: pointer; }
    button.danger { background: #e03131; }
    table { width: 100%; border-collapse: collapse; background: #fff; }
    th, td { text-align: left; padding: 0.5rem 0.75rem; border-bottom: 1px solid #dee2e6; }
  </style>
</head>
<body>
<header class="top">
  <strong>Exhibits Admin</strong>
  <nav>
    {{if .Username}}<span>{{.Username}}</span><a href="/exhibits">Exhibits</a><a href="/logout">Sign out</a>{{end}}
  </nav>
</header>
<main>
{{if .Banner}}<div id="message" class="{{.Banner.Level}}">{{.Banner.Message}}</div>{{end}}
{{end}}

{{define "footer"}}</main>
</body>
</html>{{end}}

{{define "login"}}{{template "header" .}}
<h1>Sign in</h1>
<form class="record" method="post" action="/login">
  <label for="username">Username</label>
  <input type="text" id="username" name="username" value="{{.Data.Values.Get "username"}}" autofocus>
  <label for="password">Password</label>
  <input type="password" id="password" name="password">
  <button type="submit">Sign in</button>
</form>
{{template "footer" .}}{{end}}

{{define "exhibits"}}{{template "header" .}}
<h1>Exhibits</h1>
<p><a href="/exhibits/new">Add exhibit</a></p>
<table>
  <tr><th>Title</th><th>Published</th><th>Featured</th><th></th></tr>
  {{range .Data.Exhibits}}
  <tr>
    <td>{{.Title}}</td>
    <td>{{if .IsPublished}}yes{{else}}no{{end}}</td>
    <td>{{if .IsFeatured}}yes{{else}}no{{end}}</td>
    <td>
      <a href="/exhibits/{{.UUID}}/edit">Edit</a>
      <form method="post" action="/exhibits/{{.UUID}}/publish" style="display:inline">
        <input type="hidden" name="state" value="{{if .IsPublished}}off{{else}}on{{end}}">
        <button type="submit">{{if .IsPublished}}Unpublish{{else}}Publish{{end}}</button>
      </form>
      <form method="post" action="/exhibits/{{.UUID}}/delete" style="display:inline">
        <button type="submit" class="danger">Delete</button>
      </form>
    </td>
  </tr>
  {{end}}
</table>
{{template "footer" .}}{{end}}

{{define "exhibit_form"}}{{template "header" .}}
<h1>{{if .Data.IsNew}}Add exhibit{{else}}Edit exhibit{{end}}</h1>
<form class="record" method="post" action="{{.Data.Action}}">
  <label for="title">Title</label>
  <input type="text" id="title" name="title" value="{{.Data.Values.Get "title"}}">
  <label for="subtitle">Subtitle</label>
  <input type="text" id="subtitle" name="subtitle" value="{{.Data.Values.Get "subtitle"}}">
  <label for="banner_template">Banner template</label>
  <select id="banner_template" name="banner_template">
    <option value="">default</option>
    <option value="banner_1" {{if eq (.Data.Values.Get "banner_template") "banner_1"}}selected{{end}}>Full-width hero</option>
    <option value="banner_2" {{if eq (.Data.Values.Get "banner_template") "banner_2"}}selected{{end}}>Split hero</option>
  </select>
  <label for="about_the_curators">About the curators</label>
  <textarea id="about_the_curators" name="about_the_curators" rows="6" data-rich-text>{{.Data.Values.Get "about_the_curators"}}</textarea>
  <label for="alert_text">Alert text</label>
  <input type="text" id="alert_text" name="alert_text" value="{{.Data.Values.Get "alert_text"}}">
  <label for="hero_image">Hero image</label>
  <input type="text" id="hero_image" name="hero_image" value="{{.Data.Values.Get "hero_image"}}">
  <label for="thumbnail">Thumbnail</label>
  <input type="text" id="thumbnail" name="thumbnail" value="{{.Data.Values.Get "thumbnail"}}">
  <label for="order">Order</label>
  <input type="number" id="order" name="order" value="{{.Data.Values.Get "order"}}">
  <fieldset>
    <legend>Navigation menu styles</legend>
    <label>Font family <input type="text" name="nav_menu_font_family" value="{{.Data.Values.Get "nav_menu_font_family"}}"></label>
    <label>Font size <input type="text" name="nav_menu_font_size" value="{{.Data.Values.Get "nav_menu_font_size"}}"></label>
    <label>Font color <input type="text" name="nav_menu_font_color" value="{{.Data.Values.Get "nav_menu_font_color"}}" data-color-picker></label>
    <label>Background color <input type="text" name="nav_menu_background_color" value="{{.Data.Values.Get "nav_menu_background_color"}}" data-color-picker></label>
  </fieldset>
  <fieldset>
    <legend>Template styles</legend>
    <label>Font family <input type="text" name="template_font_family" value="{{.Data.Values.Get "template_font_family"}}"></label>
    <label>Font size <input type="text" name="template_font_size" value="{{.Data.Values.Get "template_font_size"}}"></label>
    <label>Font color <input type="text" name="template_font_color" value="{{.Data.Values.Get "template_font_color"}}" data-color-picker></label>
    <label>Background color <input type="text" name="template_background_color" value="{{.Data.Values.Get "template_background_color"}}" data-color-picker></label>
  </fieldset>
  <label><input type="checkbox" name="is_published" {{if .Data.Values.Get "is_published"}}checked{{end}}> Published</label>
  <label><input type="checkbox" name="is_featured" {{if .Data.Values.Get "is_featured"}}checked{{end}}> Featured</label>
  <label><input type="checkbox" name="is_embedded" {{if .Data.Values.Get "is_embedded"}}checked{{end}}> Embedded</label>
  <button type="submit">Save</button>
</form>
{{template "form_scripts" .}}
{{template "footer" .}}{{end}}

{{define "heading_form"}}{{template "header" .}}
<h1>{{if .Data.IsNew}}Add heading{{else}}Edit heading{{end}}</h1>
<form class="record" method="post" action="{{.Data.Action}}">
  <label for="text">Heading text</label>
  <input type="text" id="text" name="text" value="{{.Data.Values.Get "text"}}">
  <label for="subtext">Subtext</label>
  <input type="text" id="subtext" name="subtext" value="{{.Data.Values.Get "subtext"}}">
  <label for="order">Order</label>
  <input type="number" id="order" name="order" value="{{.Data.Values.Get "order"}}">
  <fieldset>
    <legend>Heading styles</legend>
    <label>Font family <input type="text" name="heading_font_family" value="{{.Data.Values.Get "heading_font_family"}}"></label>
    <label>Font size <input type="text" name="heading_font_size" value="{{.Data.Values.Get "heading_font_size"}}"></label>
    <label>Font color <input type="text" name="heading_font_color" value="{{.Data.Values.Get "heading_font_color"}}" data-color-picker></label>
    <label>Background color <input type="text" name="heading_background_color" value="{{.Data.Values.Get "heading_background_color"}}" data-color-picker></label>
  </fieldset>
  <label><input type="checkbox" name="is_visible" {{if .Data.Values.Get "is_visible"}}checked{{end}}> Visible</label>
  <label><input type="checkbox" name="is_anchor" {{if .Data.Values.Get "is_anchor"}}checked{{end}}> Anchor in navigation</label>
  <button type="submit">Save</button>
</form>
{{template "form_scripts" .}}
{{template "footer" .}}{{end}}

{{define "media_upload"}}
<section>
  <h2>Upload media</h2>
  <form id="media-upload" method="post" action="/exhibits/{{.ExhibitID}}/media" enctype="multipart/form-data">
    <input type="file" name="media">
    <button type="submit">Upload</button>
  </form>
  <p id="upload-status"></p>
</section>
{{end}}

{{define "form_scripts"}}
<script>
(function () {
  var form = document.querySelector("form.record");

  // Media upload: post the file, then write the stored filename back into
  // the record form's media field.
  var upload = document.getElementById("media-upload");
  if (upload) {
    upload.addEventListener("submit", function (e) {
      e.preventDefault();
      var status = document.getElementById("upload-status");
      fetch(upload.action, { method: "POST", body: new FormData(upload) })
        .then(function (r) { return r.json(); })
        .then(function (body) {
          if (body.media) {
            var field = form.querySelector('[name="media"]');
            if (field) field.value = body.media;
            status.textContent = "Uploaded " + body.media;
          } else {
            status.textContent = body.error || "upload failed";
          }
        })
        .catch(function () { status.textContent = "upload failed"; });
    });
  }

  // Rich text preview panes under each marked textarea.
  document.querySelectorAll("[data-rich-text]").forEach(function (area) {
    var pane = document.createElement("div");
    pane.className = "preview";
    area.insertAdjacentElement("afterend", pane);
    var render = function () {
      if (!area.value) { pane.innerHTML = ""; return; }
      fetch("/api/preview", {
        method: "POST",
        headers: { "Content-Type": "application/json" },
        body: JSON.stringify({ source: area.value })
      })
        .then(function (r) { return r.json(); })
        .then(function (body) { pane.innerHTML = body.html || ""; });
    };
    area.addEventListener("change", render);
    render();
  });

  // Draft autosave, keyed by the page path.
  if (form) {
    var draftKey = location.pathname.replace(/^\//, "").replace(/\//g, ":");
    var draftURL = "/api/drafts/" + encodeURIComponent(draftKey);
    var fields = function () {
      var values = {};
      form.querySelectorAll("input[name], textarea[name], select[name]").forEach(function (el) {
        if (el.type === "checkbox") {
          if (el.checked) values[el.name] = "on";
        } else if (el.type !== "password" && el.value) {
          values[el.name] = el.value;
        }
      });
      return values;
    };

    fetch(draftURL)
      .then(function (r) { return r.ok ? r.json() : null; })
      .then(function (draft) {
        if (!draft) return;
        Object.keys(draft).forEach(function (name) {
          var el = form.querySelector('[name="' + name + '"]');
          if (!el) return;
          if (el.type === "checkbox") {
            el.checked = true;
          } else if (!el.value) {
            el.value = draft[name];
          }
        });
      });

    var timer;
    form.addEventListener("input", function () {
      clearTimeout(timer);
      timer = setTimeout(function () {
        fetch(draftURL, { method: "POST", body: JSON.stringify(fields()) });
      }, 2000);
    });
    form.addEventListener("submit", function () { clearTimeout(timer); });
  }
})();
</script>
{{end}}

{{define "grid_form"}}{{template "header" .}}
<h1>{{if .Data.IsNew}}Add grid{{else}}Edit grid{{end}}</h1>
<form class="record" method="post" action="{{.Data.Action}}">
  <label for="columns">Columns</label>
  <input type="number" id="columns" name="columns" value="{{.Data.Values.Get "columns"}}">
  <label for="order">Order</label>
  <input type="number" id="order" name="order" value="{{.Data.Values.Get "order"}}">
  <label><input type="checkbox" name="is_visible" {{if .Data.Values.Get "is_visible"}}checked{{end}}> Visible</label>
  <button type="submit">Save</button>
</form>
{{template "footer" .}}{{end}}

{{define "timeline_form"}}{{template "header" .}}
<h1>{{if .Data.IsNew}}Add timeline{{else}}Edit timeline{{end}}</h1>
<form class="record" method="post" action="{{.Data.Action}}">
  <label for="title">Title</label>
  <input type="text" id="title" name="title" value="{{.Data.Values.Get "title"}}">
  <label for="order">Order</label>
  <input type="number" id="order" name="order" value="{{.Data.Values.Get "order"}}">
  <label><input type="checkbox" name="is_visible" {{if .Data.Values.Get "is_visible"}}checked{{end}}> Visible</label>
  <button type="submit">Save</button>
</form>
{{template "footer" .}}{{end}}

{{define "media_fields"}}
  <fieldset>
    <legend>Media</legend>
    <label>Media file <input type="text" name="media" value="{{.Values.Get "media"}}"></label>
    <label>Repository item id <input type="text" name="repo_item_id" value="{{.Values.Get "repo_item_id"}}"></label>
    <label>Media type
      <select name="media_type">
        <option value=""></option>
        {{$mt := .Values.Get "media_type"}}
        <option value="image" {{if eq $mt "image"}}selected{{end}}>image</option>
        <option value="video" {{if eq $mt "video"}}selected{{end}}>video</option>
        <option value="audio" {{if eq $mt "audio"}}selected{{end}}>audio</option>
        <option value="pdf" {{if eq $mt "pdf"}}selected{{end}}>pdf</option>
        <option value="repo" {{if eq $mt "repo"}}selected{{end}}>repo</option>
      </select>
    </label>
    <label>Media width (%) <input type="number" name="media_width" value="{{.Values.Get "media_width"}}"></label>
    <label>Thumbnail <input type="text" name="media_thumbnail" value="{{.Values.Get "media_thumbnail"}}"></label>
    <label>PDF open to page <input type="number" name="pdf_open_to_page" value="{{.Values.Get "pdf_open_to_page"}}"></label>
  </fieldset>
{{end}}

{{define "item_styles"}}
  <fieldset>
    <legend>Item styles</legend>
    <label>Font family <input type="text" name="item_font_family" value="{{.Values.Get "item_font_family"}}"></label>
    <label>Font size <input type="text" name="item_font_size" value="{{.Values.Get "item_font_size"}}"></label>
    <label>Font color <input type="text" name="item_font_color" value="{{.Values.Get "item_font_color"}}" data-color-picker></label>
    <label>Background color <input type="text" name="item_background_color" value="{{.Values.Get "item_background_color"}}" data-color-picker></label>
  </fieldset>
{{end}}

{{define "grid_item_form"}}{{template "header" .}}
<h1>{{if .Data.IsNew}}Add grid item{{else}}Edit grid item{{end}}</h1>
<form class="record" method="post" action="{{.Data.Action}}">
  <label for="item_type">Item type</label>
  <select id="item_type" name="item_type">
    <option value=""></option>
    {{$it := .Data.Values.Get "item_type"}}
    <option value="media" {{if eq $it "media"}}selected{{end}}>media</option>
    <option value="text" {{if eq $it "text"}}selected{{end}}>text</option>
    <option value="media_text" {{if eq $it "media_text"}}selected{{end}}>media and text</option>
  </select>
  <label for="title">Title</label>
  <input type="text" id="title" name="title" value="{{.Data.Values.Get "title"}}">
  <label for="caption">Caption</label>
  <input type="text" id="caption" name="caption" value="{{.Data.Values.Get "caption"}}">
  <label for="item_text">Text</label>
  <textarea id="item_text" name="item_text" rows="6" data-rich-text>{{.Data.Values.Get "item_text"}}</textarea>
  <label for="description">Description</label>
  <textarea id="description" name="description" rows="3">{{.Data.Values.Get "description"}}</textarea>
  <label for="layout">Layout</label>
  <select id="layout" name="layout">
    {{$layout := .Data.Values.Get "layout"}}
    <option value=""></option>
    <option value="media_top" {{if eq $layout "media_top"}}selected{{end}}>media top</option>
    <option value="media_right" {{if eq $layout "media_right"}}selected{{end}}>media right</option>
    <option value="media_bottom" {{if eq $layout "media_bottom"}}selected{{end}}>media bottom</option>
    <option value="media_left" {{if eq $layout "media_left"}}selected{{end}}>media left</option>
  </select>
  <label for="order">Order</label>
  <input type="number" id="order" name="order" value="{{.Data.Values.Get "order"}}">
  {{template "media_fields" .Data}}
  {{template "item_styles" .Data}}
  <label><input type="checkbox" name="wrap_text" {{if .Data.Values.Get "wrap_text"}}checked{{end}}> Wrap text around media</label>
  <label><input type="checkbox" name="is_published" {{if .Data.Values.Get "is_published"}}checked{{end}}> Published</label>
  <button type="submit">Save</button>
</form>
{{template "media_upload" .Data}}
{{template "form_scripts" .}}
{{template "footer" .}}{{end}}

{{define "timeline_item_form"}}{{template "header" .}}
<h1>{{if .Data.IsNew}}Add timeline item{{else}}Edit timeline item{{end}}</h1>
<form class="record" method="post" action="{{.Data.Action}}">
  <label for="year">Year</label>
  <input type="number" id="year" name="year" value="{{.Data.Values.Get "year"}}">
  <label for="date">Date</label>
  <input type="text" id="date" name="date" value="{{.Data.Values.Get "date"}}" placeholder="YYYY-MM-DD">
  <label for="title">Title</label>
  <input type="text" id="title" name="title" value="{{.Data.Values.Get "title"}}">
  <label for="item_text">Text</label>
  <textarea id="item_text" name="item_text" rows="6" data-rich-text>{{.Data.Values.Get "item_text"}}</textarea>
  <label for="layout">Layout</label>
  <select id="layout" name="layout">
    {{$layout := .Data.Values.Get "layout"}}
    <option value=""></option>
    <option value="media_top" {{if eq $layout "media_top"}}selected{{end}}>media top</option>
    <option value="media_bottom" {{if eq $layout "media_bottom"}}selected{{end}}>media bottom</option>
  </select>
  <label for="order">Order</label>
  <input type="number" id="order" name="order" value="{{.Data.Values.Get "order"}}">
  {{template "media_fields" .Data}}
  {{template "item_styles" .Data}}
  <label><input type="checkbox" name="is_published" {{if .Data.Values.Get "is_published"}}checked{{end}}> Published</label>
  <button type="submit">Save</button>
</form>
{{template "media_upload" .Data}}
{{template "form_scripts" .}}
{{template "footer" .}}{{end}}
`

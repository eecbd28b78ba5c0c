package htmlform

// formTemplate is the structural markup for an exported questionnaire.
// Class names mirror the item kinds so host pages can style them; no CSS
// ships with the module.
const formTemplate = `<form class="dynamicform" lang="{{ language }}">
{% for item in items %}
{% if item.Kind == "title" %}  <h2 class="dynamicform-title" id="{{ item.ID }}">{{ item.HTML|safe }}</h2>
{% elif item.Kind == "paragraph" %}  <div class="dynamicform-paragraph" id="{{ item.ID }}">{{ item.HTML|safe }}</div>
{% elif item.Kind == "text" %}  <div class="dynamicform-question" data-question="{{ item.ID }}">
    <label for="{{ item.ID }}">{{ item.Label }} <span class="dynamicform-required">{{ required }}</span></label>
    <input type="text" id="{{ item.ID }}" name="{{ item.ID }}" value="{{ item.Value }}" placeholder="{{ item.Placeholder }}">
{% if item.Error %}    <p class="dynamicform-error">{{ item.Error }}</p>
{% endif %}  </div>
{% elif item.Kind == "choice" %}  <fieldset class="dynamicform-question" data-question="{{ item.ID }}">
    <legend>{{ item.Label }} <span class="dynamicform-required">{{ required }}</span></legend>
{% for option in item.Options %}    <label><input type="radio" name="{{ item.ID }}" value="{{ option.ID }}"{% if option.Selected %} checked{% endif %}> {{ option.Label }}</label>
{% endfor %}{% if item.Error %}    <p class="dynamicform-error">{{ item.Error }}</p>
{% endif %}  </fieldset>
{% endif %}{% endfor %}
  <button type="submit">{{ submit_label }}</button>
</form>
`
